package metaclient

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	metadomain "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/domain"
	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
	"github.com/rfwatson44/MindfulAI-sub001/internal/domain"
)

// UsageTracker paces outbound Graph API calls. A token bucket bounds the
// steady-state call rate; the vendor's usage headers add a per-account
// penalty delay once consumption crosses the configured threshold.
type UsageTracker struct {
	limiter      *rate.Limiter
	thresholdPct float64
	maxPenalty   time.Duration

	mu          sync.Mutex
	usage       map[string]float64
	regainUntil map[string]time.Time
	lastEntry   map[string]metadomain.UsageEntry
}

func NewUsageTracker(cfg config.RateLimit) *UsageTracker {
	return &UsageTracker{
		limiter:      rate.NewLimiter(rate.Limit(cfg.CallsPerSecond), cfg.Burst),
		thresholdPct: cfg.UsageThresholdPct,
		maxPenalty:   time.Duration(cfg.BackoffMaxMs) * time.Millisecond,
		usage:        make(map[string]float64),
		regainUntil:  make(map[string]time.Time),
		lastEntry:    make(map[string]metadomain.UsageEntry),
	}
}

// Wait blocks until a call toward the account is allowed. It honors the
// token bucket first, then any penalty derived from the last usage headers.
// All waits are bounded by the context.
func (t *UsageTracker) Wait(ctx context.Context, accountID string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}

	delay := t.penalty(accountID)
	if delay <= 0 {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"delay":      delay.String(),
		"usage_pct":  t.UsagePct(accountID),
	}).Info("meta: usage above threshold, delaying next call")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// penalty scales the extra delay linearly between the threshold and 100%
// usage, clamped to the configured maximum. A vendor-announced regain time
// takes precedence.
func (t *UsageTracker) penalty(accountID string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if until, ok := t.regainUntil[accountID]; ok {
		if remaining := time.Until(until); remaining > 0 {
			if remaining > t.maxPenalty {
				return t.maxPenalty
			}
			return remaining
		}
		delete(t.regainUntil, accountID)
	}

	pct := t.usage[accountID]
	if pct < t.thresholdPct {
		return 0
	}

	span := 100.0 - t.thresholdPct
	if span <= 0 {
		return t.maxPenalty
	}

	fraction := (pct - t.thresholdPct) / span
	if fraction > 1 {
		fraction = 1
	}

	return time.Duration(fraction * float64(t.maxPenalty))
}

// Observe parses the vendor throttling headers from a response and updates
// the per-account usage. It returns a snapshot when anything was observed.
func (t *UsageTracker) Observe(accountID string, header http.Header) *domain.RateLimitSnapshot {
	var (
		entry    metadomain.UsageEntry
		pct      float64
		observed bool
	)

	if raw := header.Get("X-Business-Use-Case-Usage"); raw != "" {
		usage := metadomain.BusinessUseCaseUsage{}
		if err := json.Unmarshal([]byte(raw), &usage); err != nil {
			logrus.WithError(err).Warn("meta: could not parse X-Business-Use-Case-Usage header")
		} else {
			for _, entries := range usage {
				for _, e := range entries {
					if e.MaxPct() > pct {
						pct = e.MaxPct()
						entry = e
					}
					observed = true
				}
			}
		}
	}

	if raw := header.Get("X-Ad-Account-Usage"); raw != "" {
		accountUsage := metadomain.AdAccountUsage{}
		if err := json.Unmarshal([]byte(raw), &accountUsage); err != nil {
			logrus.WithError(err).Warn("meta: could not parse X-Ad-Account-Usage header")
		} else {
			if accountUsage.AccIDUtilPct > pct {
				pct = accountUsage.AccIDUtilPct
			}
			observed = true
		}
	}

	if !observed {
		return nil
	}

	t.mu.Lock()
	t.usage[accountID] = pct
	t.lastEntry[accountID] = entry
	if entry.EstimatedTimeToRegainAccess > 0 {
		// The header reports minutes until access is regained.
		t.regainUntil[accountID] = time.Now().Add(time.Duration(entry.EstimatedTimeToRegainAccess) * time.Minute)
	}
	t.mu.Unlock()

	return &domain.RateLimitSnapshot{
		AccountID:             accountID,
		UsagePct:              pct,
		CallCount:             entry.CallCount,
		TotalCPUTime:          entry.TotalCPUTime,
		TotalTime:             entry.TotalTime,
		EstimatedTimeToRegain: entry.EstimatedTimeToRegainAccess,
		UpdatedAt:             time.Now(),
	}
}

// UsagePct returns the last observed usage percentage for the account.
func (t *UsageTracker) UsagePct(accountID string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.usage[accountID]
}
