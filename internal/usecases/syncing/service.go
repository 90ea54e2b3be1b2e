package syncing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta"
	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

// Progress checkpoints per pipeline level.
const (
	progressStarted   = 5
	progressAccount   = 10
	progressCampaigns = 30
	progressAdSets    = 50
	progressAds       = 70
	progressInsights  = 90
)

// errCancelled aborts the pipeline when a cancel request lands mid-run. The
// job row is already in its terminal state, so the delivery is acknowledged
// without marking the job failed.
var errCancelled = errors.New("sync cancelled")

type Service interface {
	Run(ctx context.Context, req *domain.SyncRequest) error
}

type service struct {
	cfg          *config.Config
	integrator   meta.Integrator
	accountRepo  repository.AccountRepository
	campaignRepo repository.CampaignRepository
	adSetRepo    repository.AdSetRepository
	adRepo       repository.AdRepository
	jobRepo      repository.BackgroundJobRepository
}

func NewService(
	cfg *config.Config,
	integrator meta.Integrator,
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
	jobRepo repository.BackgroundJobRepository,
) Service {
	return &service{
		cfg:          cfg,
		integrator:   integrator,
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
		adSetRepo:    adSetRepo,
		adRepo:       adRepo,
		jobRepo:      jobRepo,
	}
}

// Run executes the per-account pipeline for a queued job. Deliveries are
// at-least-once, so a job already in a terminal state is acknowledged
// without work; upserts make a re-run of a processing job harmless.
func (s *service) Run(ctx context.Context, req *domain.SyncRequest) error {
	logger := logrus.WithFields(logrus.Fields{
		"job_id":     req.JobID,
		"account_id": req.AccountID,
		"scope":      req.Scope,
	})

	job, err := s.jobRepo.GetByID(req.JobID)
	if err != nil {
		return fmt.Errorf("loading background job: %w", err)
	}
	if job == nil {
		logger.Warn("syncing: job not found, acknowledging message")
		return nil
	}
	if job.Status.IsTerminal() {
		logger.WithField("status", job.Status).Info("syncing: job already finished, skipping redelivery")
		return nil
	}

	if err := s.jobRepo.MarkProcessing(req.JobID); err != nil {
		return fmt.Errorf("marking job as processing: %w", err)
	}
	s.setProgress(req.JobID, progressStarted)

	result := &domain.SyncResult{}
	if err := s.runPipeline(ctx, req, result); err != nil {
		if errors.Is(err, errCancelled) {
			logger.Info("syncing: job cancelled mid-run")
			return nil
		}

		result.FirstError = err.Error()
		logger.WithError(err).Error("syncing: pipeline failed")
		if failErr := s.jobRepo.Fail(req.JobID, err.Error(), result.AsMap()); failErr != nil {
			logger.WithError(failErr).Error("syncing: failed to mark job as failed")
		}
		return err
	}

	if s.isCancelled(req.JobID) {
		logger.Info("syncing: job cancelled before completion")
		return nil
	}

	if err := s.jobRepo.Complete(req.JobID, result.AsMap()); err != nil {
		return fmt.Errorf("marking job as completed: %w", err)
	}

	if err := s.accountRepo.TouchLastSynced(req.AccountID); err != nil {
		logger.WithError(err).Warn("syncing: failed to update last_synced_at")
	}

	logger.WithFields(logrus.Fields{
		"campaigns": result.Campaigns,
		"ad_sets":   result.AdSets,
		"ads":       result.Ads,
		"insights":  result.Insights,
	}).Info("syncing: pipeline completed")

	return nil
}

func (s *service) runPipeline(ctx context.Context, req *domain.SyncRequest, result *domain.SyncResult) error {
	if err := s.integrator.ValidateToken(ctx); err != nil {
		return err
	}

	account, err := s.integrator.FetchAccount(ctx, req.AccountID)
	if err != nil {
		return fmt.Errorf("fetching account: %w", err)
	}
	if err := s.accountRepo.SaveOrUpdate(account); err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	s.setProgress(req.JobID, progressAccount)

	if err := s.syncCampaigns(ctx, req, result); err != nil {
		return err
	}
	s.setProgress(req.JobID, progressCampaigns)

	if err := s.syncAdSets(ctx, req, result); err != nil {
		return err
	}
	s.setProgress(req.JobID, progressAdSets)

	if err := s.syncAds(ctx, req, result); err != nil {
		return err
	}
	s.setProgress(req.JobID, progressAds)

	if err := s.syncInsights(ctx, req, result); err != nil {
		return err
	}
	s.setProgress(req.JobID, progressInsights)

	return nil
}

// Each level streams vendor pages: every page is upserted as it arrives and
// a cancel request is honored before the next page is fetched.
func (s *service) syncCampaigns(ctx context.Context, req *domain.SyncRequest, result *domain.SyncResult) error {
	err := s.integrator.FetchCampaigns(ctx, req.AccountID, func(campaigns []*domain.Campaign) error {
		for _, campaign := range campaigns {
			if err := s.campaignRepo.SaveOrUpdate(campaign); err != nil {
				return fmt.Errorf("saving campaign %s: %w", campaign.ID, err)
			}
			result.Campaigns++
		}
		return s.checkCancelled(req.JobID)
	})
	if err != nil && !errors.Is(err, errCancelled) {
		return fmt.Errorf("syncing campaigns: %w", err)
	}
	return err
}

func (s *service) syncAdSets(ctx context.Context, req *domain.SyncRequest, result *domain.SyncResult) error {
	err := s.integrator.FetchAdSets(ctx, req.AccountID, func(adSets []*domain.AdSet) error {
		for _, adSet := range adSets {
			if err := s.adSetRepo.SaveOrUpdate(adSet); err != nil {
				return fmt.Errorf("saving ad set %s: %w", adSet.ID, err)
			}
			result.AdSets++
		}
		return s.checkCancelled(req.JobID)
	})
	if err != nil && !errors.Is(err, errCancelled) {
		return fmt.Errorf("syncing ad sets: %w", err)
	}
	return err
}

func (s *service) syncAds(ctx context.Context, req *domain.SyncRequest, result *domain.SyncResult) error {
	err := s.integrator.FetchAds(ctx, req.AccountID, func(ads []*domain.Ad) error {
		for _, ad := range ads {
			if err := s.adRepo.SaveOrUpdate(ad); err != nil {
				return fmt.Errorf("saving ad %s: %w", ad.ID, err)
			}
			result.Ads++
		}
		return s.checkCancelled(req.JobID)
	})
	if err != nil && !errors.Is(err, errCancelled) {
		return fmt.Errorf("syncing ads: %w", err)
	}
	return err
}

// syncInsights aggregates the lookback window per entity and stores the
// rollup on each row's metrics column. Incremental scope stops at the
// campaign level to keep webhook-triggered jobs cheap.
func (s *service) syncInsights(ctx context.Context, req *domain.SyncRequest, result *domain.SyncResult) error {
	since, until := s.window()

	count, err := s.syncInsightLevel(ctx, req, meta.LevelCampaign, since, until, s.campaignRepo.UpdateMetrics)
	if err != nil {
		return err
	}
	result.Insights += count

	if req.Scope == domain.SyncScopeIncremental {
		return nil
	}

	count, err = s.syncInsightLevel(ctx, req, meta.LevelAdSet, since, until, s.adSetRepo.UpdateMetrics)
	if err != nil {
		return err
	}
	result.Insights += count

	count, err = s.syncInsightLevel(ctx, req, meta.LevelAd, since, until, s.adRepo.UpdateMetrics)
	if err != nil {
		return err
	}
	result.Insights += count

	return nil
}

// syncInsightLevel aggregates one level's rollup. Cancellation is checked
// between vendor pages through the pageDone hook; the per-object upsert only
// happens once the level's aggregation is complete.
func (s *service) syncInsightLevel(
	ctx context.Context,
	req *domain.SyncRequest,
	level string,
	since, until time.Time,
	update func(id string, metrics map[string]any) error,
) (int, error) {
	pageDone := func() error {
		return s.checkCancelled(req.JobID)
	}

	metricsByID, err := s.integrator.FetchInsights(ctx, req.AccountID, level, since, until, pageDone)
	if err != nil {
		if errors.Is(err, errCancelled) {
			return 0, err
		}
		return 0, fmt.Errorf("fetching %s insights: %w", level, err)
	}

	count := 0
	for objectID, metrics := range metricsByID {
		if err := update(objectID, metrics); err != nil {
			return count, fmt.Errorf("updating %s %s metrics: %w", level, objectID, err)
		}
		count++
	}

	return count, nil
}

func (s *service) window() (time.Time, time.Time) {
	until := time.Now().UTC().Truncate(24 * time.Hour)
	since := until.AddDate(0, 0, -s.cfg.MetaMarketingSync.LookbackDays)
	return since, until
}

func (s *service) setProgress(jobID string, progress int) {
	if err := s.jobRepo.UpdateProgress(jobID, progress); err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id": jobID,
			"error":  err.Error(),
		}).Warn("syncing: failed to update job progress")
	}
}

// isCancelled reloads the job row so a cancel issued through the API takes
// effect between pages and levels. Errors err on the side of continuing.
func (s *service) isCancelled(jobID string) bool {
	job, err := s.jobRepo.GetByID(jobID)
	if err != nil || job == nil {
		return false
	}
	return job.Status == domain.JobStatusCancelled
}

func (s *service) checkCancelled(jobID string) error {
	if s.isCancelled(jobID) {
		return errCancelled
	}
	return nil
}
