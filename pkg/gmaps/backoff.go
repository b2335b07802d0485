package gmaps

import (
	"math"
	"math/rand"
	"time"
)

// BackoffPolicy configures the exponential backoff schedule used between
// retry attempts. A policy value is immutable configuration; the attempt
// counter and elapsed-time clock live in the executor, local to one
// logical call.
type BackoffPolicy struct {
	// InitialInterval is the base delay before the first retry.
	InitialInterval time.Duration
	// Multiplier grows the delay after each attempt.
	Multiplier float64
	// MaxInterval caps the unperturbed delay.
	MaxInterval time.Duration
	// MaxElapsedTime bounds total wall-clock retry duration for one
	// logical call. Zero means no elapsed-time bound.
	MaxElapsedTime time.Duration
	// JitterFraction perturbs each delay by ± JitterFraction*delay, drawn
	// uniformly at random.
	JitterFraction float64
	// MaxAttempts bounds the number of attempts, the initial one included.
	// Zero means no attempt bound.
	MaxAttempts int
}

// DefaultBackoffPolicy returns the stock retry schedule.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{
		InitialInterval: 500 * time.Millisecond,
		Multiplier:      1.5,
		MaxInterval:     60 * time.Second,
		MaxElapsedTime:  15 * time.Minute,
		JitterFraction:  0.5,
		MaxAttempts:     10,
	}
}

// Delay returns the sleep duration before retry number attempt (1-based:
// attempt 1 is the delay after the first failure). The unperturbed value
// is initial * multiplier^(attempt-1), clamped to MaxInterval, then
// jittered by ± JitterFraction of itself.
func (p BackoffPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	base := float64(p.InitialInterval) * math.Pow(p.Multiplier, float64(attempt-1))
	if max := float64(p.MaxInterval); p.MaxInterval > 0 && base > max {
		base = max
	}

	if base < 0 {
		base = 0
	}

	if p.JitterFraction > 0 {
		// Uniform in [-JitterFraction, +JitterFraction].
		jitter := (rand.Float64()*2 - 1) * p.JitterFraction
		base += base * jitter
	}

	return time.Duration(base)
}
