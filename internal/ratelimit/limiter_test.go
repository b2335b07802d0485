package ratelimit_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/geosuite-io/gmaps-client/internal/ratelimit"
	"github.com/geosuite-io/gmaps-client/pkg/gmaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitUnconfiguredScopeNeverBlocks(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(nil, nil)

	for i := 0; i < 100; i++ {
		require.NoError(t, limiter.Wait(context.Background(), []gmaps.Api{gmaps.ApiGeocoding}))
	}
}

func TestWaitWithinBudgetDoesNotBlock(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(map[gmaps.Api]gmaps.RateLimit{
		gmaps.ApiGeocoding: {Requests: 3, Per: time.Hour},
	}, nil)

	start := time.Now()

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(context.Background(), []gmaps.Api{gmaps.ApiGeocoding}))
	}

	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWaitSuspendsUntilWindowRollsOver(t *testing.T) {
	t.Parallel()

	window := 50 * time.Millisecond
	limiter := ratelimit.New(map[gmaps.Api]gmaps.RateLimit{
		gmaps.ApiGeocoding: {Requests: 2, Per: window},
	}, nil)

	ctx := context.Background()
	scopes := []gmaps.Api{gmaps.ApiGeocoding}

	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, scopes))
	require.NoError(t, limiter.Wait(ctx, scopes))

	// Third call exceeds the budget and must wait for the rollover.
	require.NoError(t, limiter.Wait(ctx, scopes))
	assert.GreaterOrEqual(t, time.Since(start), window)
}

func TestWaitMultiScopeReservesAtomically(t *testing.T) {
	t.Parallel()

	window := 50 * time.Millisecond
	limiter := ratelimit.New(map[gmaps.Api]gmaps.RateLimit{
		gmaps.ApiAll:       {Requests: 100, Per: window},
		gmaps.ApiGeocoding: {Requests: 1, Per: window},
		gmaps.ApiElevation: {Requests: 1, Per: window},
	}, nil)

	ctx := context.Background()

	// Exhaust geocoding. Elevation still has capacity and must admit
	// immediately even while geocoding callers are blocked.
	require.NoError(t, limiter.Wait(ctx, []gmaps.Api{gmaps.ApiAll, gmaps.ApiGeocoding}))

	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, []gmaps.Api{gmaps.ApiAll, gmaps.ApiElevation}))
	assert.Less(t, time.Since(start), window)

	// A second geocoding call waits out the window.
	start = time.Now()
	require.NoError(t, limiter.Wait(ctx, []gmaps.Api{gmaps.ApiAll, gmaps.ApiGeocoding}))
	assert.GreaterOrEqual(t, time.Since(start), window-10*time.Millisecond)
}

func TestWaitAdmitsInArrivalOrder(t *testing.T) {
	t.Parallel()

	window := 40 * time.Millisecond
	limiter := ratelimit.New(map[gmaps.Api]gmaps.RateLimit{
		gmaps.ApiPlaces: {Requests: 1, Per: window},
	}, nil)

	ctx := context.Background()
	scopes := []gmaps.Api{gmaps.ApiPlaces}

	// Occupy the only slot so every goroutine below has to queue.
	require.NoError(t, limiter.Wait(ctx, scopes))

	const waiters = 4

	var (
		mu    sync.Mutex
		order []int
	)

	started := make(chan struct{})

	var wg sync.WaitGroup

	for i := 0; i < waiters; i++ {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()

			// Stagger arrivals so queue order is deterministic.
			<-started
			time.Sleep(time.Duration(id) * 5 * time.Millisecond)

			assert.NoError(t, limiter.Wait(ctx, scopes))

			mu.Lock()
			order = append(order, id)
			mu.Unlock()
		}(i)
	}

	close(started)
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestWaitCancelledWhileQueued(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(map[gmaps.Api]gmaps.RateLimit{
		gmaps.ApiPlaces: {Requests: 1, Per: time.Hour},
	}, nil)

	scopes := []gmaps.Api{gmaps.ApiPlaces}
	require.NoError(t, limiter.Wait(context.Background(), scopes))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- limiter.Wait(ctx, scopes)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}

func TestWaitCancelledHeadHandsTurnToNext(t *testing.T) {
	t.Parallel()

	window := 60 * time.Millisecond
	limiter := ratelimit.New(map[gmaps.Api]gmaps.RateLimit{
		gmaps.ApiPlaces: {Requests: 1, Per: window},
	}, nil)

	scopes := []gmaps.Api{gmaps.ApiPlaces}
	require.NoError(t, limiter.Wait(context.Background(), scopes))

	headCtx, cancelHead := context.WithCancel(context.Background())
	headDone := make(chan error, 1)

	go func() {
		headDone <- limiter.Wait(headCtx, scopes)
	}()

	time.Sleep(10 * time.Millisecond)

	secondDone := make(chan error, 1)

	go func() {
		secondDone <- limiter.Wait(context.Background(), scopes)
	}()

	time.Sleep(10 * time.Millisecond)
	cancelHead()

	assert.ErrorIs(t, <-headDone, context.Canceled)

	select {
	case err := <-secondDone:
		assert.NoError(t, err)
	case <-time.After(2 * window):
		t.Fatal("second waiter was never admitted after head cancellation")
	}
}

func TestWaitAlreadyCancelledContext(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, limiter.Wait(ctx, []gmaps.Api{gmaps.ApiAll}), context.Canceled)
}

func TestNewIgnoresNonPositiveLimits(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(map[gmaps.Api]gmaps.RateLimit{
		gmaps.ApiGeocoding: {Requests: 0, Per: time.Second},
		gmaps.ApiElevation: {Requests: 5, Per: 0},
	}, nil)

	// Both entries are invalid, so neither scope is limited.
	for i := 0; i < 20; i++ {
		require.NoError(t, limiter.Wait(context.Background(), []gmaps.Api{gmaps.ApiGeocoding, gmaps.ApiElevation}))
	}
}
