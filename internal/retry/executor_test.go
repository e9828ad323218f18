package retry

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// mockOperation tracks invocation count and simulates transient failures
type mockOperation struct {
	invocations  int
	failUntil    int // Fail for invocations < failUntil
	transientErr error
}

func (m *mockOperation) execute(ctx context.Context) error {
	m.invocations++
	if m.invocations < m.failUntil {
		if m.transientErr != nil {
			return m.transientErr
		}
		return statusErr(http.StatusServiceUnavailable)
	}
	return nil
}

func fastBackoff(attempts int) *ExponentialBackoff {
	return NewExponentialBackoff(attempts, WithInitialDelay(time.Millisecond), WithJitter(0))
}

func TestExecutor_Execute_SuccessOnFirstAttempt(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(3))
	op := &mockOperation{failUntil: 1}

	require.NoError(t, executor.Execute(context.Background(), op.execute))
	assert.Equal(t, 1, op.invocations)
}

func TestExecutor_Execute_SuccessAfterRetries(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(5))
	op := &mockOperation{failUntil: 4}

	require.NoError(t, executor.Execute(context.Background(), op.execute))
	assert.Equal(t, 4, op.invocations)
}

func TestExecutor_Execute_FatalErrorNoRetry(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(5))
	op := &mockOperation{failUntil: 99, transientErr: statusErr(http.StatusNotFound)}

	err := executor.Execute(context.Background(), op.execute)

	var se statusErr
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, int(se))
	assert.Equal(t, 1, op.invocations, "fatal errors must not be retried")
}

func TestExecutor_Execute_ExhaustedRetries(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(3))
	op := &mockOperation{failUntil: 999}

	err := executor.Execute(context.Background(), op.execute)

	require.Error(t, err)
	assert.Equal(t, 4, op.invocations, "initial attempt plus 3 retries")
}

func TestExecutor_Execute_NoRetriesStrategy(t *testing.T) {
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(0))
	op := &mockOperation{failUntil: 999}

	require.Error(t, executor.Execute(context.Background(), op.execute))
	assert.Equal(t, 1, op.invocations)
}

func TestExecutor_Execute_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	executor := NewExecutor(NewHTTPErrorClassifier(),
		NewExponentialBackoff(5, WithInitialDelay(time.Hour), WithJitter(0)),
	).WithOnRetry(func(int, error, time.Duration) { cancel() })

	op := &mockOperation{failUntil: 999}
	err := executor.Execute(ctx, op.execute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, op.invocations)
}

func TestExecutor_WithOnRetry_DoesNotModifyOriginal(t *testing.T) {
	base := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(2))
	var calls []int
	withCallback := base.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		calls = append(calls, attempt)
	})

	assert.Nil(t, base.onRetry)

	op := &mockOperation{failUntil: 3}
	require.NoError(t, withCallback.Execute(context.Background(), op.execute))
	assert.Equal(t, []int{0, 1}, calls)
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, fastBackoff(1)) })
	assert.Panics(t, func() { NewExecutor(NewHTTPErrorClassifier(), nil) })
}

// throttledErr is a 429 response carrying a Retry-After delay.
type throttledErr struct{ wait time.Duration }

func (e throttledErr) Error() string             { return "status 429" }
func (e throttledErr) HTTPStatus() int           { return http.StatusTooManyRequests }
func (e throttledErr) RetryAfter() time.Duration { return e.wait }

func TestExecutor_Execute_HonorsRetryAfter(t *testing.T) {
	var delays []time.Duration
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(1)).
		WithOnRetry(func(_ int, _ error, delay time.Duration) { delays = append(delays, delay) })

	op := &mockOperation{failUntil: 2, transientErr: throttledErr{wait: 20 * time.Millisecond}}
	require.NoError(t, executor.Execute(context.Background(), op.execute))

	assert.Equal(t, []time.Duration{20 * time.Millisecond}, delays)
	assert.Equal(t, 2, op.invocations)
}

func TestExecutor_Execute_CapsRetryAfter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var delay time.Duration
	executor := NewExecutor(NewHTTPErrorClassifier(), fastBackoff(1)).
		WithOnRetry(func(_ int, _ error, d time.Duration) {
			delay = d
			cancel()
		})

	op := &mockOperation{failUntil: 99, transientErr: throttledErr{wait: 24 * time.Hour}}
	err := executor.Execute(ctx, op.execute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, metsgen.MaxRetryAfter, delay)
}
