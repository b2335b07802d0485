// Package retry drives the attempt loop around one network operation.
// Whether a failure is worth another attempt is decided by
// gmaps.Classify; the schedule between attempts by gmaps.BackoffPolicy.
package retry

import (
	"context"
	"time"

	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// Executor runs operations under a backoff policy. The executor itself is
// stateless and safe for concurrent use: the attempt counter and elapsed
// clock are local to each Do call, so concurrent calls cannot disturb each
// other's retry sequences.
type Executor struct {
	policy gmaps.BackoffPolicy
	logger gmaps.Logger
}

// New builds an executor. A nil logger silences retry diagnostics.
func New(policy gmaps.BackoffPolicy, logger gmaps.Logger) *Executor {
	if logger == nil {
		logger = gmaps.NoopLogger{}
	}

	return &Executor{
		policy: policy,
		logger: logger,
	}
}

// Do runs op until it succeeds, fails permanently, or exhausts the
// attempt and elapsed-time budgets. The error returned is always the last
// one op produced, never a synthetic "gave up" wrapper, so callers can
// branch on the real cause. Panics inside op are not recovered.
//
// op performs exactly one network attempt. Rate limiting happens before
// Do, once per logical call, not once per attempt.
func Do[T any](ctx context.Context, e *Executor, name string, op func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()

	for attempt := 1; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if gmaps.Classify(err) == gmaps.Permanent {
			return result, err
		}

		if e.policy.MaxAttempts > 0 && attempt >= e.policy.MaxAttempts {
			e.logger.Error("retry budget exhausted", map[string]interface{}{
				"operation": name,
				"attempts":  attempt,
				"error":     err.Error(),
			})

			return result, err
		}

		if e.policy.MaxElapsedTime > 0 && time.Since(start) >= e.policy.MaxElapsedTime {
			e.logger.Error("retry time budget exhausted", map[string]interface{}{
				"operation": name,
				"attempts":  attempt,
				"elapsed":   time.Since(start).String(),
				"error":     err.Error(),
			})

			return result, err
		}

		delay := e.policy.Delay(attempt)

		e.logger.Warn("transient failure, retrying", map[string]interface{}{
			"operation": name,
			"attempt":   attempt,
			"delay":     delay.String(),
			"error":     err.Error(),
		})

		timer := time.NewTimer(delay)

		select {
		case <-ctx.Done():
			timer.Stop()

			var zero T

			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

// Execute runs an operation with no result value.
func (e *Executor) Execute(ctx context.Context, name string, op func(ctx context.Context) error) error {
	_, err := Do(ctx, e, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})

	return err
}
