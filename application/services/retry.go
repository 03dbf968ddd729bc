package services

import (
	"context"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"time"
)

type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// Retry invokes op until it succeeds, sleeping policy.Delay between failed
// attempts, up to policy.Attempts invocations in total. Every failure is
// treated as retryable; the isolation API gives no permanent-failure
// signal to classify on. The last error is returned once the budget is
// spent.
func Retry[T any](ctx context.Context, logger outbound.LoggerPort, policy RetryPolicy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= policy.Attempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
		logger.WarnWithFields("operation failed, will retry if attempts remain", map[string]interface{}{
			"attempt":     attempt,
			"maxAttempts": policy.Attempts,
			"error":       err.Error(),
		})
		if attempt == policy.Attempts {
			break
		}
		if err := sleepWithContext(ctx, policy.Delay); err != nil {
			return zero, err
		}
	}

	return zero, lastErr
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
