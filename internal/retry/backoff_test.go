package retry

import (
	"testing"
	"time"

	"github.com/vvka-141/metsgen/pkg/metsgen"
)

func TestExponentialBackoff_Defaults(t *testing.T) {
	b := NewExponentialBackoff(3)

	if b.initialDelay != metsgen.DefaultRetryInitialDelay {
		t.Errorf("initialDelay = %v, want %v", b.initialDelay, metsgen.DefaultRetryInitialDelay)
	}
	if b.maxDelay != metsgen.DefaultRetryMaxDelay {
		t.Errorf("maxDelay = %v, want %v", b.maxDelay, metsgen.DefaultRetryMaxDelay)
	}
	if b.multiplier != 2.0 {
		t.Errorf("multiplier = %v, want 2.0", b.multiplier)
	}
	if b.MaxAttempts() != 3 {
		t.Errorf("MaxAttempts() = %d, want 3", b.MaxAttempts())
	}
}

func TestExponentialBackoff_NextDelay_WithoutJitter(t *testing.T) {
	b := NewExponentialBackoff(5,
		WithInitialDelay(100*time.Millisecond),
		WithMultiplier(2.0),
		WithJitter(0),
	)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{3, 800 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := b.NextDelay(tt.attempt); got != tt.want {
			t.Errorf("NextDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestExponentialBackoff_NextDelay_MaxDelayCap(t *testing.T) {
	b := NewExponentialBackoff(10,
		WithInitialDelay(100*time.Millisecond),
		WithMaxDelay(1*time.Second),
		WithJitter(0),
	)

	if got := b.NextDelay(10); got != time.Second {
		t.Errorf("NextDelay(10) = %v, want capped 1s", got)
	}
}

func TestExponentialBackoff_NextDelay_WithJitter(t *testing.T) {
	tests := []struct {
		random float64
		want   time.Duration
	}{
		{0.0, 90 * time.Millisecond},
		{0.5, 100 * time.Millisecond},
		{1.0, 110 * time.Millisecond},
	}

	for _, tt := range tests {
		r := tt.random
		b := NewExponentialBackoff(3,
			WithInitialDelay(100*time.Millisecond),
			WithJitter(0.1),
			WithJitterFunc(func() float64 { return r }),
		)
		if got := b.NextDelay(0); got != tt.want {
			t.Errorf("NextDelay with random=%v = %v, want %v", tt.random, got, tt.want)
		}
	}
}
