package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/apiErrors"
)

type syncRequestBody struct {
	AccountID string `json:"account_id"`
	Scope     string `json:"scope"`
}

type syncResponseBody struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// EnqueueSync accepts a sync request for one ad account and returns the job
// ID the client polls. The heavy lifting happens in the queue worker.
func EnqueueSync(service jobs.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body syncRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "request body must be valid JSON", nil)
			return
		}

		if body.AccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id is required", nil)
			return
		}

		scope := domain.SyncScope(body.Scope)
		switch scope {
		case "":
			scope = domain.SyncScopeFull
		case domain.SyncScopeFull, domain.SyncScopeIncremental:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "scope must be full or incremental", nil)
			return
		}

		job, err := service.EnqueueSync(r.Context(), body.AccountID, scope)
		if err != nil {
			logrus.WithError(err).Error("error enqueueing sync job")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "failed to enqueue sync job", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)

		if err := json.NewEncoder(w).Encode(syncResponseBody{JobID: job.ID, Status: string(job.Status)}); err != nil {
			logrus.WithError(err).Warn("error encoding sync response")
		}
	})
}
