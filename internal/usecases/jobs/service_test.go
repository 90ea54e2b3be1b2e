package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	qstashmocks "github.com/rfwatson44/MindfulAI-sub001/infrastructure/queue/qstash/mocks"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository/mocks"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

func newJobService(ctrl *gomock.Controller) (Service, *mocks.MockBackgroundJobRepository, *qstashmocks.MockPublisher) {
	jobRepo := mocks.NewMockBackgroundJobRepository(ctrl)
	publisher := qstashmocks.NewMockPublisher(ctrl)

	cfg := &config.Config{
		Webhook: config.Webhook{BaseURL: "https://api.example.com"},
	}

	return NewService(cfg, jobRepo, publisher), jobRepo, publisher
}

func TestService_EnqueueSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, jobRepo, publisher := newJobService(ctrl)

	var createdID string
	jobRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(job *domain.BackgroundJob) error {
			require.NotEmpty(t, job.ID)
			assert.Equal(t, "123", job.AccountID)
			assert.Equal(t, domain.SyncScopeFull, job.Scope)
			assert.Equal(t, domain.JobStatusQueued, job.Status)
			createdID = job.ID
			return nil
		})

	publisher.EXPECT().
		Publish(gomock.Any(), "https://api.example.com/v1/meta-marketing/worker", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, destination string, body any, opts ...any) (string, error) {
			req, ok := body.(*domain.SyncRequest)
			require.True(t, ok)
			assert.Equal(t, createdID, req.JobID)
			assert.Equal(t, "123", req.AccountID)
			return "msg-001", nil
		})

	jobRepo.EXPECT().
		SetMessageID(gomock.Any(), "msg-001").
		DoAndReturn(func(jobID, messageID string) error {
			assert.Equal(t, createdID, jobID)
			return nil
		})

	job, err := service.EnqueueSync(context.Background(), "123", domain.SyncScopeFull)
	require.NoError(t, err)
	assert.Equal(t, createdID, job.ID)
	assert.Equal(t, "msg-001", job.MessageID)
}

func TestService_EnqueueSync_PublishFailureMarksJobFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, jobRepo, publisher := newJobService(ctrl)

	jobRepo.EXPECT().Create(gomock.Any()).Return(nil)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("queue unavailable"))
	jobRepo.EXPECT().Fail(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil)

	_, err := service.EnqueueSync(context.Background(), "123", domain.SyncScopeFull)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publishing sync message")
}

func TestService_GetStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, jobRepo, _ := newJobService(ctrl)

	jobRepo.EXPECT().GetByID("missing").Return(nil, nil)

	_, err := service.GetStatus(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(jobRepo *mocks.MockBackgroundJobRepository)
		wantErr error
	}{
		{
			name: "running job is cancelled",
			setup: func(jobRepo *mocks.MockBackgroundJobRepository) {
				jobRepo.EXPECT().GetByID("job001").Return(&domain.BackgroundJob{
					ID:     "job001",
					Status: domain.JobStatusProcessing,
				}, nil)
				jobRepo.EXPECT().Cancel("job001").Return(true, nil)
			},
		},
		{
			name: "unknown job",
			setup: func(jobRepo *mocks.MockBackgroundJobRepository) {
				jobRepo.EXPECT().GetByID("job001").Return(nil, nil)
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "finished job cannot be cancelled",
			setup: func(jobRepo *mocks.MockBackgroundJobRepository) {
				jobRepo.EXPECT().GetByID("job001").Return(&domain.BackgroundJob{
					ID:     "job001",
					Status: domain.JobStatusCompleted,
				}, nil)
				jobRepo.EXPECT().Cancel("job001").Return(false, nil)
			},
			wantErr: ErrJobNotRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, jobRepo, _ := newJobService(ctrl)
			tt.setup(jobRepo)

			err := service.Cancel(context.Background(), "job001")

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
