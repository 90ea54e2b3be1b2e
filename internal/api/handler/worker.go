package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/queue/qstash"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/syncing"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/apiErrors"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/utils"
)

// SyncWorker is the QStash delivery target. A non-2xx response makes QStash
// redeliver, so only transient failures return errors; bad payloads are
// acknowledged and dropped.
func SyncWorker(cfg *config.Config, receiver *qstash.Receiver, service syncing.Service) http.Handler {
	destination := cfg.Webhook.BaseURL + jobs.WorkerPath

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to read request body", nil)
			return
		}

		if err := receiver.VerifyRequest(r, body, destination); err != nil {
			logrus.WithError(err).Warn("worker: queue signature verification failed")
			apiErrors.WriteError(w, apiErrors.ErrInvalidSignature, "invalid queue signature", nil)
			return
		}

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.Debugf("worker: received sync message: %s", utils.PrettyJson(body))
		}

		var req domain.SyncRequest
		if err := json.Unmarshal(body, &req); err != nil || req.JobID == "" || req.AccountID == "" {
			logrus.WithError(err).Warn("worker: dropping malformed sync message")
			w.WriteHeader(http.StatusOK)
			return
		}

		if err := service.Run(r.Context(), &req); err != nil {
			logrus.WithFields(logrus.Fields{
				"job_id": req.JobID,
				"error":  err.Error(),
			}).Error("worker: sync run failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "sync run failed", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
