package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
)

const maintenanceJobName = "meta_marketing_maintenance"

// MaintenanceService runs the housekeeping cron: api-metric retention
// deletes and the stale-job sweep that fails processing jobs whose worker
// died without reporting back.
type MaintenanceService struct {
	scheduler   *gocron.Scheduler
	cfg         *config.Config
	jobRepo     repository.BackgroundJobRepository
	metricRepo  repository.APIMetricRepository
	cronLogRepo repository.CronLogRepository
}

func NewMaintenanceService(
	cfg *config.Config,
	jobRepo repository.BackgroundJobRepository,
	metricRepo repository.APIMetricRepository,
	cronLogRepo repository.CronLogRepository,
) *MaintenanceService {
	return &MaintenanceService{
		scheduler:   gocron.NewScheduler(time.UTC),
		cfg:         cfg,
		jobRepo:     jobRepo,
		metricRepo:  metricRepo,
		cronLogRepo: cronLogRepo,
	}
}

func (s *MaintenanceService) Start(ctx context.Context) error {
	logrus.WithField("cron", s.cfg.MetaMarketingSync.MaintenanceCron).
		Info("scheduler: starting maintenance scheduler")

	_, err := s.scheduler.Cron(s.cfg.MetaMarketingSync.MaintenanceCron).Do(s.run)
	if err != nil {
		return fmt.Errorf("scheduling maintenance job: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping maintenance scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MaintenanceService) run() {
	logID, err := s.cronLogRepo.Start(maintenanceJobName)
	if err != nil {
		logrus.WithError(err).Warn("scheduler: failed to open cron log entry")
	}

	deleted, err := s.metricRepo.DeleteOlderThan(s.cfg.MetaMarketingSync.MetricRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("scheduler: failed to prune api metrics")
	}

	threshold := time.Duration(s.cfg.MetaMarketingSync.StaleJobThresholdMin) * time.Minute
	swept, err := s.jobRepo.FailStale(threshold)
	if err != nil {
		logrus.WithError(err).Error("scheduler: failed to sweep stale jobs")
	}

	message := fmt.Sprintf("metrics_deleted=%d stale_jobs_failed=%d", deleted, swept)
	if logID != 0 {
		if err := s.cronLogRepo.Finish(logID, "completed", 0, 0, message); err != nil {
			logrus.WithError(err).Warn("scheduler: failed to close cron log entry")
		}
	}

	logrus.WithFields(logrus.Fields{
		"metrics_deleted":   deleted,
		"stale_jobs_failed": swept,
	}).Info("scheduler: maintenance run finished")
}
