// Package futures provides the eager promise primitive that the async and
// asyncresult packages build their lazy producers on.  A Future represents a
// computation that is already in flight: it is created uncompleted, completed
// exactly once, and can be read any number of times by any number of
// goroutines, all of which observe the same value.
//
// The Future itself carries no laziness.  Deferring work until it is wanted
// is the job of async.Async, which is a producer of Futures.
package futures

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCanceled is the error reported when a future is completed by calling Cancel.
var ErrCanceled = errors.New("future canceled")

// Func is the function signature accepted by FromFunc.
type Func[T any] func() (T, error)

// Future is the single-assignment container for the eventual outcome of a
// computation.  Complete, Fail and Cancel each complete the future; the first
// completion wins and all later completions are silently ignored.
//
// Get blocks until the future completes or the provided context is done.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	err   error
}

// New creates an uncompleted Future that must be completed manually by
// calling Complete, Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// NewWithContext creates an uncompleted Future that is failed with the
// context's error as soon as ctx is done, unless it was completed first.
func NewWithContext[T any](ctx context.Context) *Future[T] {
	f := New[T]()

	go func() {
		select {
		case <-ctx.Done():
			f.Fail(ctx.Err())
		case <-f.completed:
		}
	}()

	return f
}

// FromFunc runs do on a new goroutine and returns a Future that completes
// with its outcome.  The work is started eagerly, before FromFunc returns.
func FromFunc[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Completed returns a Future that is already completed with the provided value.
func Completed[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Complete completes this Future with the provided value.
// Ignored if the future is already completed.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil)
}

// Fail completes this Future with the provided error.
// Ignored if the future is already completed.
func (f *Future[T]) Fail(err error) {
	f.internalComplete(*new(T), err)
}

// Cancel completes this Future with ErrCanceled.
// Ignored if the future is already completed.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) internalComplete(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Get retrieves the outcome of this Future, blocking until it completes or
// the provided context is canceled.  Get may be called concurrently from
// multiple goroutines; all of them receive the same outcome.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), context.Canceled
	}
}
