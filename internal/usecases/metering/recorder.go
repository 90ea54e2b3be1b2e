package metering

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rfwatson44/MindfulAI-sub001/infrastructure/repository"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

// Recorder persists per-call metrics and rate-limit snapshots for
// observability. Failures are logged and swallowed: losing a metric row
// must never fail a sync.
type Recorder struct {
	metricRepo    repository.APIMetricRepository
	rateLimitRepo repository.RateLimitRepository
}

func NewRecorder(
	metricRepo repository.APIMetricRepository,
	rateLimitRepo repository.RateLimitRepository,
) *Recorder {
	return &Recorder{
		metricRepo:    metricRepo,
		rateLimitRepo: rateLimitRepo,
	}
}

func (r *Recorder) RecordCall(ctx context.Context, metric domain.APIMetric) {
	if err := r.metricRepo.Insert(&metric); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": metric.AccountID,
			"endpoint":   metric.Endpoint,
			"error":      err.Error(),
		}).Warn("metering: failed to record api call")
	}
}

func (r *Recorder) RecordUsage(ctx context.Context, snapshot domain.RateLimitSnapshot) {
	if err := r.rateLimitRepo.SaveOrUpdate(&snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": snapshot.AccountID,
			"error":      err.Error(),
		}).Warn("metering: failed to record rate limit snapshot")
	}
}
