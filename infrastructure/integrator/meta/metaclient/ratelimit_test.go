package metaclient

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfwatson44/MindfulAI-sub001/internal/config"
)

func newTestTracker(thresholdPct float64, maxPenaltyMs int) *UsageTracker {
	return NewUsageTracker(config.RateLimit{
		CallsPerSecond:    1000,
		Burst:             1000,
		UsageThresholdPct: thresholdPct,
		BackoffMaxMs:      maxPenaltyMs,
	})
}

func TestUsageTracker_Observe(t *testing.T) {
	tests := []struct {
		name        string
		headers     map[string]string
		expectNil   bool
		expectPct   float64
		expectCalls int
	}{
		{
			name:      "no throttling headers",
			headers:   map[string]string{},
			expectNil: true,
		},
		{
			name: "business use case usage takes the worst counter",
			headers: map[string]string{
				"X-Business-Use-Case-Usage": `{"123456":[{"type":"ads_insights","call_count":12,"total_cputime":30,"total_time":25,"estimated_time_to_regain_access":0}]}`,
			},
			expectPct:   30,
			expectCalls: 12,
		},
		{
			name: "ad account usage wins when higher",
			headers: map[string]string{
				"X-Business-Use-Case-Usage": `{"123456":[{"type":"ads_management","call_count":10,"total_cputime":10,"total_time":10}]}`,
				"X-Ad-Account-Usage":        `{"acc_id_util_pct":92.5}`,
			},
			expectPct:   92.5,
			expectCalls: 10,
		},
		{
			name: "malformed business header falls back to account header",
			headers: map[string]string{
				"X-Business-Use-Case-Usage": `not-json`,
				"X-Ad-Account-Usage":        `{"acc_id_util_pct":40}`,
			},
			expectPct: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := newTestTracker(75, 60000)

			header := http.Header{}
			for k, v := range tt.headers {
				header.Set(k, v)
			}

			snapshot := tracker.Observe("123456", header)

			if tt.expectNil {
				assert.Nil(t, snapshot)
				return
			}

			require.NotNil(t, snapshot)
			assert.Equal(t, "123456", snapshot.AccountID)
			assert.Equal(t, tt.expectPct, snapshot.UsagePct)
			assert.Equal(t, tt.expectCalls, snapshot.CallCount)
			assert.Equal(t, tt.expectPct, tracker.UsagePct("123456"))
		})
	}
}

func TestUsageTracker_PenaltyScaling(t *testing.T) {
	tracker := newTestTracker(50, 1000)

	// Below the threshold there is no extra delay.
	tracker.usage["acc"] = 40
	assert.Equal(t, time.Duration(0), tracker.penalty("acc"))

	// Halfway between threshold and 100% yields half the max penalty.
	tracker.usage["acc"] = 75
	assert.Equal(t, 500*time.Millisecond, tracker.penalty("acc"))

	// Above 100% the penalty is clamped.
	tracker.usage["acc"] = 150
	assert.Equal(t, 1000*time.Millisecond, tracker.penalty("acc"))
}

func TestUsageTracker_RegainTimePrecedence(t *testing.T) {
	tracker := newTestTracker(50, 1000)

	header := http.Header{}
	header.Set("X-Business-Use-Case-Usage", `{"acc":[{"call_count":10,"total_cputime":10,"total_time":10,"estimated_time_to_regain_access":5}]}`)
	snapshot := tracker.Observe("acc", header)
	require.NotNil(t, snapshot)
	assert.Equal(t, 5, snapshot.EstimatedTimeToRegain)

	// Usage is below the threshold, but the vendor-announced regain window
	// still applies, clamped to the max penalty.
	delay := tracker.penalty("acc")
	assert.Equal(t, 1000*time.Millisecond, delay)
}

func TestUsageTracker_WaitHonorsContext(t *testing.T) {
	tracker := newTestTracker(50, 60000)
	tracker.usage["acc"] = 100

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := tracker.Wait(ctx, "acc")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
