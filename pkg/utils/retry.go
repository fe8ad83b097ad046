package utils

import (
	"context"
	"fmt"
	"time"
)

// RetryConfig represents retry configuration
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
	// ShouldRetry decides whether an error is worth another attempt; nil retries every error
	ShouldRetry func(err error) bool
	OnRetry     func(attempt int, err error) // Optional callback for retry attempts
}

// RetryWithDelay retries a function with fixed delay between attempts.
// The last error is returned unwrapped so callers can inspect its type.
func RetryWithDelay(ctx context.Context, config RetryConfig, fn func() error) error {
	attempts := config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(config.Delay):
			}

			if config.OnRetry != nil {
				config.OnRetry(i, lastErr)
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if config.ShouldRetry != nil && !config.ShouldRetry(err) {
			break
		}
	}

	return lastErr
}
