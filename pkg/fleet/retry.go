package fleet

import (
	"context"
	"time"

	"go.uber.org/zap"
	"edureality.xyz/vr-fleet-service/pkg/common"
)

const (
	DefaultRetryMaxAttempts    = 3
	DefaultRetryInitialBackoff = 500 * time.Millisecond
)

// RetryPolicy is the shared retry-on-rate-limit policy every store write goes
// through. Only rate-limit signals are retried, with exponential backoff;
// any other error propagates immediately. One policy instance is injected
// into the Fleet, not re-declared per call site.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
}

func NewRetryPolicy(maxAttempts int, initialBackoff time.Duration) *RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = DefaultRetryMaxAttempts
	}
	if initialBackoff <= 0 {
		initialBackoff = DefaultRetryInitialBackoff
	}
	return &RetryPolicy{MaxAttempts: maxAttempts, InitialBackoff: initialBackoff}
}

func (p *RetryPolicy) Do(ctx context.Context, op func() error) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryRetryPolicy),
	)

	backoff := p.InitialBackoff
	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = op()
		if err == nil || !IsRateLimited(err) {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}

		logger.Warn("Rate limited, backing off",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	logger.Warn("Retry attempts exhausted", zap.Int("attempts", p.MaxAttempts), zap.Error(err))
	return err
}
