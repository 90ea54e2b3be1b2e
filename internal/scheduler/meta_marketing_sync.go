package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/usecases/jobs"
)

const metaMarketingJobName = "meta_marketing_sync"

// MetaMarketingSyncService schedules the nightly fan-out that enqueues one
// sync job per active account. The cron endpoint triggers the same path.
type MetaMarketingSyncService struct {
	scheduler           *gocron.Scheduler
	cfg                 *config.Config
	accountRepo         repository.AccountRepository
	cronLogRepo         repository.CronLogRepository
	jobService          jobs.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMetaMarketingSyncService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	cronLogRepo repository.CronLogRepository,
	jobService jobs.Service,
) *MetaMarketingSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.MetaMarketingSync.CronSchedule,
		"lookback_days": cfg.MetaMarketingSync.LookbackDays,
		"sync_enabled":  cfg.MetaMarketingSync.Enabled,
	}).Info("scheduler: meta marketing sync configuration loaded")

	return &MetaMarketingSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		cfg:         cfg,
		accountRepo: accountRepo,
		cronLogRepo: cronLogRepo,
		jobService:  jobService,
	}
}

func (s *MetaMarketingSyncService) Start(ctx context.Context) error {
	if !s.cfg.MetaMarketingSync.Enabled {
		logrus.Info("scheduler: meta marketing sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.cfg.MetaMarketingSync.CronSchedule).
		Info("scheduler: starting meta marketing sync scheduler")

	_, err := s.scheduler.Cron(s.cfg.MetaMarketingSync.CronSchedule).Do(func() {
		s.fanOut(context.Background(), domain.SyncScopeFull)
	})
	if err != nil {
		return fmt.Errorf("scheduling meta marketing sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping meta marketing sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs the fan-out outside the cron window. Used by the
// CRON_SECRET-guarded endpoint.
func (s *MetaMarketingSyncService) TriggerManualSync(ctx context.Context, scope domain.SyncScope) (int, error) {
	return s.fanOut(ctx, scope)
}

// GetStatus reports scheduler state for the cron status endpoint.
func (s *MetaMarketingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.cfg.MetaMarketingSync.Enabled,
		"cron_schedule": s.cfg.MetaMarketingSync.CronSchedule,
		"sync_running":  s.syncRunning,
	}
	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}
	return status
}

func (s *MetaMarketingSyncService) fanOut(ctx context.Context, scope domain.SyncScope) (int, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: meta marketing fan-out already running, skipping")
		return 0, fmt.Errorf("fan-out already running")
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logID, err := s.cronLogRepo.Start(metaMarketingJobName)
	if err != nil {
		logrus.WithError(err).Warn("scheduler: failed to open cron log entry")
	}

	accounts, err := s.accountRepo.List([]domain.AccountStatus{domain.AccountStatusActive})
	if err != nil {
		s.finishLog(logID, "failed", 0, 0, err.Error())
		return 0, fmt.Errorf("listing active accounts: %w", err)
	}

	if len(accounts) == 0 {
		logrus.Info("scheduler: no active accounts to sync")
		s.finishLog(logID, "completed", 0, 0, "no active accounts")
		return 0, nil
	}

	enqueued := 0
	var firstErr error
	for _, account := range accounts {
		job, err := s.jobService.EnqueueSync(ctx, account.ID, scope)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err.Error(),
			}).Error("scheduler: failed to enqueue sync job")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"job_id":     job.ID,
		}).Info("scheduler: sync job enqueued")
		enqueued++
	}

	status := "completed"
	message := ""
	if firstErr != nil {
		status = "partial"
		message = firstErr.Error()
	}
	s.finishLog(logID, status, len(accounts), enqueued, message)

	logrus.WithFields(logrus.Fields{
		"accounts_total": len(accounts),
		"jobs_enqueued":  enqueued,
	}).Info("scheduler: meta marketing fan-out finished")

	return enqueued, nil
}

func (s *MetaMarketingSyncService) finishLog(logID int64, status string, accountsTotal, jobsEnqueued int, message string) {
	if logID == 0 {
		return
	}
	if err := s.cronLogRepo.Finish(logID, status, accountsTotal, jobsEnqueued, message); err != nil {
		logrus.WithError(err).Warn("scheduler: failed to close cron log entry")
	}
}
