package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/apiErrors"
)

func GetJobStatus(service jobs.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jobID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if jobID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "job ID is required", nil)
			return
		}

		job, err := service.GetStatus(r.Context(), jobID)
		if err != nil {
			if errors.Is(err, jobs.ErrJobNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "job not found", nil)
				return
			}
			logrus.WithError(err).Error("error loading job status")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load job status", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(job); err != nil {
			logrus.WithError(err).Warn("error encoding job status response")
		}
	})
}

func CancelJob(service jobs.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jobID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if jobID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "job ID is required", nil)
			return
		}

		err := service.Cancel(r.Context(), jobID)
		if err != nil {
			switch {
			case errors.Is(err, jobs.ErrJobNotFound):
				apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "job not found", nil)
			case errors.Is(err, jobs.ErrJobNotRunning):
				apiErrors.WriteError(w, apiErrors.ErrJobNotRunning, "job already finished", nil)
			default:
				logrus.WithError(err).Error("error cancelling job")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to cancel job", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(map[string]string{"job_id": jobID, "status": "cancelled"}); err != nil {
			logrus.WithError(err).Warn("error encoding cancel response")
		}
	})
}
