package jobs

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/queue/qstash"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	"github.com/rfwatson44/MindfulAI-sub001/pkg/utils"
)

// WorkerPath is the route QStash delivers sync messages to.
const WorkerPath = "/v1/meta-marketing/worker"

type Service interface {
	EnqueueSync(ctx context.Context, accountID string, scope domain.SyncScope) (*domain.BackgroundJob, error)
	GetStatus(ctx context.Context, jobID string) (*domain.BackgroundJob, error)
	Cancel(ctx context.Context, jobID string) error
}

type service struct {
	cfg       *config.Config
	jobRepo   repository.BackgroundJobRepository
	publisher qstash.Publisher
}

func NewService(
	cfg *config.Config,
	jobRepo repository.BackgroundJobRepository,
	publisher qstash.Publisher,
) Service {
	return &service{
		cfg:       cfg,
		jobRepo:   jobRepo,
		publisher: publisher,
	}
}

// EnqueueSync creates the job row first, then hands the worker message to
// the queue. A failed publish marks the job failed so it never sits queued
// forever.
func (s *service) EnqueueSync(ctx context.Context, accountID string, scope domain.SyncScope) (*domain.BackgroundJob, error) {
	jobID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating job ID: %w", err)
	}

	job := &domain.BackgroundJob{
		ID:        jobID,
		AccountID: accountID,
		Scope:     scope,
		Status:    domain.JobStatusQueued,
		Progress:  0,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("creating background job: %w", err)
	}

	destination := s.cfg.Webhook.BaseURL + WorkerPath

	messageID, err := s.publisher.Publish(ctx, destination, &domain.SyncRequest{
		JobID:     jobID,
		AccountID: accountID,
		Scope:     scope,
	}, qstash.WithDeduplicationID(jobID))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id":     jobID,
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("jobs: failed to publish sync message")

		if failErr := s.jobRepo.Fail(jobID, "queue publish failed: "+err.Error(), nil); failErr != nil {
			logrus.WithError(failErr).Error("jobs: failed to mark job as failed after publish error")
		}

		return nil, fmt.Errorf("publishing sync message: %w", err)
	}

	if err := s.jobRepo.SetMessageID(jobID, messageID); err != nil {
		logrus.WithError(err).Warn("jobs: failed to store queue message ID")
	}

	logrus.WithFields(logrus.Fields{
		"job_id":     jobID,
		"account_id": accountID,
		"scope":      scope,
		"message_id": messageID,
	}).Info("jobs: sync job enqueued")

	job.MessageID = messageID
	return job, nil
}

func (s *service) GetStatus(ctx context.Context, jobID string) (*domain.BackgroundJob, error) {
	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, fmt.Errorf("loading background job: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// Cancel is best-effort: it flips the status flag and relies on the worker
// checking it between entity levels. In-flight calls are not preempted.
func (s *service) Cancel(ctx context.Context, jobID string) error {
	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		return fmt.Errorf("loading background job: %w", err)
	}
	if job == nil {
		return ErrJobNotFound
	}

	cancelled, err := s.jobRepo.Cancel(jobID)
	if err != nil {
		return fmt.Errorf("cancelling background job: %w", err)
	}
	if !cancelled {
		return ErrJobNotRunning
	}

	logrus.WithFields(logrus.Fields{
		"job_id":     jobID,
		"account_id": job.AccountID,
	}).Info("jobs: sync job cancelled")

	return nil
}
