package retry

import (
	"context"
	"errors"
	"time"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// Executor orchestrates retry attempts with backoff and error classification.
//
// WithOnRetry returns a new instance; the receiver is never modified, so an
// Executor can be shared.
type Executor struct {
	classifier metsgen.ErrorClassifier
	strategy   metsgen.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor with the given configuration.
// Panics if classifier or strategy is nil.
func NewExecutor(
	classifier metsgen.ErrorClassifier,
	strategy metsgen.BackoffStrategy,
) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// WithOnRetry returns a new Executor with the specified retry callback.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs the operation with retry logic.
// Returns the result of the last attempt (success or fatal error).
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	maxAttempts := e.strategy.MaxAttempts()

	lastErr := operation(ctx)
	if lastErr == nil || !e.classifier.IsTransient(lastErr) {
		return lastErr
	}

	// Negative maxAttempts retries until the context ends.
	for attempt := 0; maxAttempts < 0 || attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		delay := e.strategy.NextDelay(attempt)
		if hint := retryAfter(lastErr); hint > delay {
			delay = hint
		}
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		lastErr = operation(ctx)
		if lastErr == nil || !e.classifier.IsTransient(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// retryAfter returns the server-requested wait carried by err, capped at
// metsgen.MaxRetryAfter.
func retryAfter(err error) time.Duration {
	var hint metsgen.RetryAfterHint
	if !errors.As(err, &hint) {
		return 0
	}
	return min(hint.RetryAfter(), metsgen.MaxRetryAfter)
}
