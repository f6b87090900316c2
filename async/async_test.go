package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-fpkit/fpkit/futures"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	require := require.New(t)

	v, err := Start(context.Background(), Of(42))
	require.NoError(err)
	require.Equal(42, v)
}

func TestConstructionRunsNothing(t *testing.T) {
	require := require.New(t)

	calls := 0
	a := Asyncify(func() (int, error) {
		calls++
		return 1, nil
	})

	a = Map(a, func(n int) int { return n + 1 })
	a = Tee(a, func(int) {})
	a = Delay(a, time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	require.Zero(calls)

	v, err := Start(context.Background(), a)
	require.NoError(err)
	require.Equal(2, v)
	require.Equal(1, calls)
}

func TestProducerIsRestartable(t *testing.T) {
	require := require.New(t)

	calls := 0
	a := Asyncify(func() (int, error) {
		calls++
		return calls, nil
	})

	v, err := Start(context.Background(), a)
	require.NoError(err)
	require.Equal(1, v)

	v, err = Start(context.Background(), a)
	require.NoError(err)
	require.Equal(2, v)
	require.Equal(2, calls)
}

func TestMap(t *testing.T) {
	require := require.New(t)

	a := Map(Of(21), func(n int) int { return n * 2 })

	v, err := Start(context.Background(), a)
	require.NoError(err)
	require.Equal(42, v)
}

func TestBind(t *testing.T) {
	require := require.New(t)

	a := Bind(Of(2), func(n int) Async[string] {
		return Asyncify(func() (string, error) {
			if n == 2 {
				return "two", nil
			}
			return "other", nil
		})
	})

	v, err := Start(context.Background(), a)
	require.NoError(err)
	require.Equal("two", v)
}

func TestFlatten(t *testing.T) {
	require := require.New(t)

	a := Flatten(Of(Of(3)))

	v, err := Start(context.Background(), a)
	require.NoError(err)
	require.Equal(3, v)
}

func TestDelay(t *testing.T) {
	require := require.New(t)

	start := time.Now()
	_, err := Start(context.Background(), Delay(Of(1), 20*time.Millisecond))
	require.NoError(err)
	require.GreaterOrEqual(time.Since(start), 20*time.Millisecond)
}

func TestDelayZeroAndNegative(t *testing.T) {
	require := require.New(t)

	v, err := Start(context.Background(), Delay(Of(1), 0))
	require.NoError(err)
	require.Equal(1, v)

	v, err = Start(context.Background(), Delay(Of(2), -5*time.Millisecond))
	require.NoError(err)
	require.Equal(2, v)
}

func TestTee(t *testing.T) {
	require := require.New(t)

	var seen []int
	a := Tee(Of(9), func(n int) { seen = append(seen, n) })

	v, err := Start(context.Background(), a)
	require.NoError(err)
	require.Equal(9, v)
	require.Equal([]int{9}, seen)
}

func TestSequentialOrdersSideEffects(t *testing.T) {
	require := require.New(t)

	var mu sync.Mutex
	var log []string

	record := func(name string, d time.Duration, n int) Async[int] {
		return Asyncify(func() (int, error) {
			mu.Lock()
			log = append(log, name+":start")
			mu.Unlock()

			time.Sleep(d)

			mu.Lock()
			log = append(log, name+":done")
			mu.Unlock()
			return n, nil
		})
	}

	a := Sequential([]Async[int]{
		record("a1", 15*time.Millisecond, 1),
		record("a2", 5*time.Millisecond, 2),
		record("a3", time.Millisecond, 3),
	})

	vs, err := Start(context.Background(), a)
	require.NoError(err)
	require.Equal([]int{1, 2, 3}, vs)

	// a2 must not begin until a1's future has resolved
	require.Equal([]string{
		"a1:start", "a1:done",
		"a2:start", "a2:done",
		"a3:start", "a3:done",
	}, log)
}

func TestSequentialFailsOnFirstError(t *testing.T) {
	require := require.New(t)

	testErr := errors.New("step failed")
	calls := 0

	a := Sequential([]Async[int]{
		Asyncify(func() (int, error) { return 0, testErr }),
		Asyncify(func() (int, error) {
			calls++
			return 2, nil
		}),
	})

	_, err := Start(context.Background(), a)
	require.ErrorIs(err, testErr)
	require.Zero(calls)
}

func TestParallelPreservesInputOrder(t *testing.T) {
	require := require.New(t)

	a1 := Delay(Of("r1"), 50*time.Millisecond)
	a2 := Delay(Of("r2"), 10*time.Millisecond)

	vs, err := Start(context.Background(), Parallel([]Async[string]{a1, a2}))
	require.NoError(err)
	require.Equal([]string{"r1", "r2"}, vs)
}

func TestParallelRunsConcurrently(t *testing.T) {
	require := require.New(t)

	mk := func(n int) Async[int] {
		return Asyncify(func() (int, error) {
			time.Sleep(20 * time.Millisecond)
			return n, nil
		})
	}

	start := time.Now()
	vs, err := Start(context.Background(), Parallel([]Async[int]{mk(1), mk(2), mk(3), mk(4)}))
	require.NoError(err)
	require.Equal([]int{1, 2, 3, 4}, vs)

	// four 20ms steps run together, not back to back
	require.Less(time.Since(start), 70*time.Millisecond)
}

func TestParallelFailure(t *testing.T) {
	require := require.New(t)

	testErr := errors.New("parallel step failed")

	_, err := Start(context.Background(), Parallel([]Async[int]{
		Of(1),
		Asyncify(func() (int, error) { return 0, testErr }),
	}))
	require.ErrorIs(err, testErr)
}

func TestNever(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := Start(ctx, Never[int]())
	require.ErrorIs(err, context.Canceled)
}

func TestOfFutureSharesOutcome(t *testing.T) {
	require := require.New(t)

	calls := 0
	f := futures.FromFunc(func() (int, error) {
		calls++
		return 5, nil
	})

	a := OfFuture(f)

	v, err := Start(context.Background(), a)
	require.NoError(err)
	require.Equal(5, v)

	// re-starting does not re-run the already started work
	v, err = Start(context.Background(), a)
	require.NoError(err)
	require.Equal(5, v)
	require.Equal(1, calls)
}
