package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/logger"
)

// Config holds retry configuration
type Config struct {
	MaxRetries int              // Maximum number of retry attempts
	BaseDelay  time.Duration    // Base delay between retries
	MaxDelay   time.Duration    // Maximum delay between retries
	Multiplier float64          // Exponential backoff multiplier
	Jitter     bool             // Add randomization to prevent thundering herd
	Retryable  func(error) bool // Determines whether an error is retryable
}

// DefaultConfig returns a default retry configuration suited to short
// outbound provider calls.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		Retryable:  func(error) bool { return true },
	}
}

// Do executes fn with exponential backoff until it succeeds, the retry
// budget is exhausted, or the context is cancelled.
func Do(ctx context.Context, config Config, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			if attempt > 0 {
				logger.Debug("Call succeeded after retries",
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if config.Retryable != nil && !config.Retryable(err) {
			return err
		}
		if attempt == config.MaxRetries {
			break
		}

		delay := calculateDelay(config, attempt)
		logger.Debug("Call failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", config.MaxRetries+1, lastErr)
}

func calculateDelay(config Config, attempt int) time.Duration {
	delay := float64(config.BaseDelay) * math.Pow(config.Multiplier, float64(attempt))
	if delay > float64(config.MaxDelay) {
		delay = float64(config.MaxDelay)
	}
	if config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
