// Package ratelimit gates outgoing calls against per-scope request
// quotas. A Limiter instance is owned by the top-level client and shared
// by reference across all of its calls; there is no process-wide state.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
)

// window is the fixed-window counter for one scope. Mutated only under
// the limiter mutex; never exposed outside the package.
type window struct {
	limit gmaps.RateLimit
	start time.Time
	count int
}

// roll resets the counter when the current window has elapsed.
func (w *window) roll(now time.Time) {
	if w.start.IsZero() || now.Sub(w.start) >= w.limit.Per {
		w.start = now
		w.count = 0
	}
}

// expiry is the instant the current window rolls over.
func (w *window) expiry() time.Time {
	return w.start.Add(w.limit.Per)
}

// full reports whether the window has no capacity left.
func (w *window) full() bool {
	return w.count >= w.limit.Requests
}

// waiter is one queued Wait call.
type waiter struct {
	scopes []gmaps.Api
	// turn is signalled when the waiter reaches the head of the queue.
	turn chan struct{}
}

// Limiter admits calls against fixed-window counters keyed by gmaps.Api
// scope. Admission is FIFO: a call that arrived earlier is admitted before
// any later call, so newer cheap calls cannot starve older ones. Waiters
// block the goroutine of their own call only; the limiter never holds its
// mutex while sleeping.
type Limiter struct {
	mu      sync.Mutex
	windows map[gmaps.Api]*window
	queue   []*waiter
	logger  gmaps.Logger
}

// New builds a limiter for the configured scopes. Scopes absent from
// limits are not limited. Entries with a non-positive budget or window are
// ignored.
func New(limits map[gmaps.Api]gmaps.RateLimit, logger gmaps.Logger) *Limiter {
	if logger == nil {
		logger = gmaps.NoopLogger{}
	}

	windows := make(map[gmaps.Api]*window, len(limits))

	for api, limit := range limits {
		if limit.Requests <= 0 || limit.Per <= 0 {
			continue
		}

		windows[api] = &window{limit: limit}
	}

	return &Limiter{
		windows: windows,
		logger:  logger,
	}
}

// Wait suspends until one unit of capacity has been reserved in every
// window keyed by a requested scope, atomically across all of them, then
// returns nil. It fails only when ctx is cancelled, in which case no
// capacity has been reserved and no timer is left pending.
func (l *Limiter) Wait(ctx context.Context, scopes []gmaps.Api) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	current := &waiter{
		scopes: scopes,
		turn:   make(chan struct{}, 1),
	}

	l.mu.Lock()

	l.queue = append(l.queue, current)
	if l.queue[0] == current {
		current.signal()
	}

	for {
		if l.queue[0] != current {
			l.mu.Unlock()

			select {
			case <-ctx.Done():
				l.abandon(current)

				return ctx.Err()
			case <-current.turn:
			}

			l.mu.Lock()

			continue
		}

		now := time.Now()

		retryAt, ok := l.reserve(now, scopes)
		if ok {
			l.pop()
			l.mu.Unlock()

			return nil
		}

		l.mu.Unlock()

		l.logger.Debug("rate limit reached, waiting for window to roll over", map[string]interface{}{
			"wait": retryAt.Sub(now).String(),
		})

		timer := time.NewTimer(retryAt.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			l.abandon(current)

			return ctx.Err()
		case <-timer.C:
		}

		l.mu.Lock()
	}
}

// reserve rolls the windows for the requested scopes and, when every one
// of them has capacity, takes one unit from each. When any window is full
// it reserves nothing and returns the earliest instant at which retrying
// can succeed. Callers hold the mutex.
func (l *Limiter) reserve(now time.Time, scopes []gmaps.Api) (time.Time, bool) {
	var retryAt time.Time

	for _, api := range scopes {
		win, limited := l.windows[api]
		if !limited {
			continue
		}

		win.roll(now)

		if win.full() {
			if expiry := win.expiry(); retryAt.IsZero() || expiry.Before(retryAt) {
				retryAt = expiry
			}
		}
	}

	if !retryAt.IsZero() {
		return retryAt, false
	}

	for _, api := range scopes {
		if win, limited := l.windows[api]; limited {
			win.count++
		}
	}

	return time.Time{}, true
}

// pop removes the head waiter and hands the turn to the next one. Callers
// hold the mutex.
func (l *Limiter) pop() {
	l.queue = l.queue[1:]
	if len(l.queue) > 0 {
		l.queue[0].signal()
	}
}

// abandon removes a cancelled waiter from the queue wherever it sits. If
// it was the head, the next waiter gets the turn.
func (l *Limiter) abandon(cancelled *waiter) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, queued := range l.queue {
		if queued != cancelled {
			continue
		}

		l.queue = append(l.queue[:i], l.queue[i+1:]...)
		if i == 0 && len(l.queue) > 0 {
			l.queue[0].signal()
		}

		return
	}
}

// signal marks the waiter as head of the queue. The buffered channel makes
// repeated signals harmless.
func (w *waiter) signal() {
	select {
	case w.turn <- struct{}{}:
	default:
	}
}
