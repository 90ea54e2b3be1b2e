package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/scheduler"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/apiErrors"
)

// RunMetaMarketingCron triggers the fan-out that enqueues one sync job per
// active account. External cron providers hit this with the shared secret.
func RunMetaMarketingCron(service *scheduler.MetaMarketingSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := domain.SyncScopeFull
		if r.URL.Query().Get("scope") == string(domain.SyncScopeIncremental) {
			scope = domain.SyncScopeIncremental
		}

		enqueued, err := service.TriggerManualSync(r.Context(), scope)
		if err != nil {
			logrus.WithError(err).Error("error triggering meta marketing fan-out")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to trigger sync fan-out", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)

		response := map[string]any{
			"jobs_enqueued": enqueued,
			"scope":         scope,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error encoding cron response")
		}
	})
}

func GetMetaMarketingCronStatus(service *scheduler.MetaMarketingSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(service.GetStatus()); err != nil {
			logrus.WithError(err).Warn("error encoding cron status response")
		}
	})
}
