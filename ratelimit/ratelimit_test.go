package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-fpkit/fpkit/async"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	require := require.New(t)

	rl := New[int](Opts{Limit: 1000, Burst: 10, MaxQueueDepth: 100})
	defer rl.Close()

	wg := sync.WaitGroup{}

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			v, err := rl.Submit(context.Background(), async.Of(n*2))
			require.NoError(err)
			require.Equal(n*2, v)
		}(i)
	}

	wg.Wait()
}

func TestRateLimiterMetersStarts(t *testing.T) {
	require := require.New(t)

	// one start every 20ms after the initial token
	rl := New[int](Opts{Limit: Every(20 * time.Millisecond), Burst: 1, MaxQueueDepth: 10})
	defer rl.Close()

	start := time.Now()
	wg := sync.WaitGroup{}

	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := rl.Submit(context.Background(), async.Of(1))
			require.NoError(err)
		}()
	}

	wg.Wait()
	require.GreaterOrEqual(time.Since(start), 40*time.Millisecond)
}

func TestRateLimiterQueueFull(t *testing.T) {
	require := require.New(t)

	rl := New[int](Opts{
		Limit:             Every(time.Hour),
		Burst:             1,
		MaxQueueDepth:     0,
		FullQueueStrategy: ErrorWhenFull,
	})
	defer rl.Close()

	slow := async.Delay(async.Of(1), time.Hour)

	// occupy the worker, then fill the zero-depth queue
	rl.SubmitF(context.Background(), slow)
	time.Sleep(10 * time.Millisecond)
	rl.SubmitF(context.Background(), slow)
	time.Sleep(10 * time.Millisecond)

	f := rl.SubmitF(context.Background(), async.Of(2))
	_, err := f.Get(context.Background())
	require.ErrorIs(err, ErrQueueFull)
}

func TestWrapIsLazy(t *testing.T) {
	require := require.New(t)

	rl := New[int](Opts{Limit: 1000, Burst: 1, MaxQueueDepth: 10})
	defer rl.Close()

	calls := 0
	a := rl.Wrap(context.Background(), async.Asyncify(func() (int, error) {
		calls++
		return 7, nil
	}))

	time.Sleep(10 * time.Millisecond)
	require.Zero(calls)

	v, err := async.Start(context.Background(), a)
	require.NoError(err)
	require.Equal(7, v)
	require.Equal(1, calls)
}

func TestConfig(t *testing.T) {
	failIfNoPanic := func(f func()) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected a panic")
			}
		}()

		f()
	}

	opts := Opts{Limit: -1, Burst: 1}
	failIfNoPanic(opts.validate)

	opts = Opts{Limit: Every(10 * time.Millisecond), Burst: 0}
	failIfNoPanic(opts.validate)

	opts = Opts{Limit: Every(10 * time.Millisecond), Burst: 1, MaxQueueDepth: -1}
	failIfNoPanic(opts.validate)
}
