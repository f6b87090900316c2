package futures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-fpkit/fpkit/result"
	"github.com/stretchr/testify/require"
)

func TestResolveAll(t *testing.T) {
	require := require.New(t)

	f1 := FromFunc(func() (int, error) {
		time.Sleep(6 * time.Millisecond)
		return 1, nil
	})

	f2 := FromFunc(func() (int, error) {
		time.Sleep(4 * time.Millisecond)
		return 2, nil
	})

	f3 := FromFunc(func() (int, error) {
		time.Sleep(2 * time.Millisecond)
		return 3, nil
	})

	rs, err := ResolveAll(context.Background(), []*Future[int]{f1, f2, f3})
	require.NoError(err)

	expected := []result.Result[int, error]{
		result.Ok[int, error](1),
		result.Ok[int, error](2),
		result.Ok[int, error](3),
	}

	require.Equal(expected, rs)
}

func TestResolveAllCollectsFailures(t *testing.T) {
	require := require.New(t)

	testErr := errors.New("test error")

	f1 := FromFunc(func() (int, error) { return 1, nil })
	f2 := FromFunc(func() (int, error) { return 0, testErr })
	f3 := FromFunc(func() (int, error) { return 3, nil })

	rs, err := ResolveAll(context.Background(), []*Future[int]{f1, f2, f3})
	require.NoError(err)
	require.Len(rs, 3)

	require.Equal(result.Ok[int, error](1), rs[0])

	e, ok := rs[1].Error()
	require.True(ok)
	require.ErrorIs(e, testErr)

	require.Equal(result.Ok[int, error](3), rs[2])
}

func TestResolveAllCancellation(t *testing.T) {
	require := require.New(t)

	f1 := New[int]()
	f2 := New[int]()
	f3 := New[int]()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := ResolveAll(ctx, []*Future[int]{f1, f2, f3})
	require.ErrorIs(err, context.Canceled)
}
