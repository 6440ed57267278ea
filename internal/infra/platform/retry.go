package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

const defaultMaxRetries = 3

// errPermanent marks failures a retry cannot fix.
var errPermanent = errors.New("permanent failure")

func permanent(err error) error {
	return fmt.Errorf("%w: %w", errPermanent, err)
}

// withRetry runs fn up to maxRetries times with exponential backoff
// starting at 100ms.
func withRetry(ctx context.Context, maxRetries int, operation string, attrs []any, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.DebugContext(ctx, "retrying "+operation,
				append(attrs,
					slog.Int("attempt", attempt+1),
					slog.Duration("backoff", backoff),
				)...,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, errPermanent) {
			return err
		}
		lastErr = err
	}

	slog.ErrorContext(ctx, "all retries exhausted for "+operation,
		append(attrs,
			slog.Int("max_retries", maxRetries),
			slog.String("error", lastErr.Error()),
		)...,
	)
	return fmt.Errorf("failed %s after %d retries: %w", operation, maxRetries, lastErr)
}
