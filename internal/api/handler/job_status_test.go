package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs"
	jobsmocks "github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs/mocks"
)

func requestWithJobID(method, target, jobID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	params := httprouter.Params{{Key: "id", Value: jobID}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestGetJobStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobService := jobsmocks.NewMockService(ctrl)
	jobService.EXPECT().GetStatus(gomock.Any(), "job001").Return(&domain.BackgroundJob{
		ID:       "job001",
		Status:   domain.JobStatusProcessing,
		Progress: 50,
	}, nil)

	req := requestWithJobID(http.MethodGet, "/v1/job-status/job001", "job001")
	recorder := httptest.NewRecorder()

	GetJobStatus(jobService).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var job domain.BackgroundJob
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &job))
	assert.Equal(t, "job001", job.ID)
	assert.Equal(t, domain.JobStatusProcessing, job.Status)
	assert.Equal(t, 50, job.Progress)
}

func TestGetJobStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobService := jobsmocks.NewMockService(ctrl)
	jobService.EXPECT().GetStatus(gomock.Any(), "missing").Return(nil, jobs.ErrJobNotFound)

	req := requestWithJobID(http.MethodGet, "/v1/job-status/missing", "missing")
	recorder := httptest.NewRecorder()

	GetJobStatus(jobService).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCancelJob(t *testing.T) {
	tests := []struct {
		name       string
		cancelErr  error
		wantStatus int
	}{
		{"running job", nil, http.StatusOK},
		{"unknown job", jobs.ErrJobNotFound, http.StatusNotFound},
		{"finished job", jobs.ErrJobNotRunning, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jobService := jobsmocks.NewMockService(ctrl)
			jobService.EXPECT().Cancel(gomock.Any(), "job001").Return(tt.cancelErr)

			req := requestWithJobID(http.MethodPost, "/v1/jobs/job001/cancel", "job001")
			recorder := httptest.NewRecorder()

			CancelJob(jobService).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestEnqueueSyncHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobService := jobsmocks.NewMockService(ctrl)
	jobService.EXPECT().
		EnqueueSync(gomock.Any(), "123", domain.SyncScopeFull).
		Return(&domain.BackgroundJob{ID: "job001", Status: domain.JobStatusQueued}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/meta-marketing/sync", strings.NewReader(`{"account_id":"123"}`))
	recorder := httptest.NewRecorder()

	EnqueueSync(jobService).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusAccepted, recorder.Code)

	var response syncResponseBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "job001", response.JobID)
	assert.Equal(t, "queued", response.Status)
}

func TestEnqueueSyncHandler_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing account_id", `{"scope":"full"}`},
		{"invalid scope", `{"account_id":"123","scope":"weekly"}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jobService := jobsmocks.NewMockService(ctrl)

			req := httptest.NewRequest(http.MethodPost, "/v1/meta-marketing/sync", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			EnqueueSync(jobService).ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
