// Package async provides Async, a lazy, restartable asynchronous computation.
//
// An Async is a zero-argument producer of a futures.Future.  Building an
// Async performs no work: nothing runs until the producer is invoked, which
// Start does.  Because it is a producer and not a cached promise, invoking it
// again re-executes the underlying computation; an Async is never memoized.
//
// This layer assumes by contract that producers do not fail.  A failure that
// does occur is not caught here: it surfaces from Start as the future's
// error, the way an unrecovered failure would surface from any in-flight
// computation.  Callers that want failure as a value should use the
// asyncresult package instead.
package async

import (
	"context"
	"time"

	"github.com/go-fpkit/fpkit/futures"
)

// Async is a deferred computation yielding a value of type A.  Invoking it
// starts the work and returns the future holding the eventual value.
type Async[A any] func() *futures.Future[A]

// Of returns a producer that completes immediately with the provided value.
func Of[A any](a A) Async[A] {
	return func() *futures.Future[A] {
		return futures.Completed(a)
	}
}

// OfFuture wraps an already constructed future.  Note that this does not make
// work that has already started lazy again: the future keeps running (or is
// already complete) regardless of whether the producer is ever invoked, and
// every invocation observes the same single outcome.
func OfFuture[A any](f *futures.Future[A]) Async[A] {
	return func() *futures.Future[A] {
		return f
	}
}

// Asyncify lifts an eagerly-written function into a lazy producer.  The
// function is not called until the producer is invoked; each invocation calls
// it again on a fresh goroutine.
func Asyncify[A any](do func() (A, error)) Async[A] {
	return func() *futures.Future[A] {
		return futures.FromFunc(do)
	}
}

// Never returns a producer whose future never completes.  It exists for test
// scaffolding such as timeout handling, not for production flows.
func Never[A any]() Async[A] {
	return func() *futures.Future[A] {
		return futures.New[A]()
	}
}

// Start invokes the producer and awaits its future.  The context bounds the
// wait only; it does not abort work that has begun.
func Start[A any](ctx context.Context, a Async[A]) (A, error) {
	return a().Get(ctx)
}

// Map returns a producer that, once started, runs a and applies f to its value.
func Map[A any, B any](a Async[A], f func(A) B) Async[B] {
	return func() *futures.Future[B] {
		fa := a()
		return futures.FromFunc(func() (B, error) {
			v, err := fa.Get(context.Background())
			if err != nil {
				return *new(B), err
			}
			return f(v), nil
		})
	}
}

// Bind sequences a producer-returning step after a.  Once started, a runs to
// completion, f builds the next producer from its value, and that producer is
// itself started and awaited.
func Bind[A any, B any](a Async[A], f func(A) Async[B]) Async[B] {
	return func() *futures.Future[B] {
		fa := a()
		return futures.FromFunc(func() (B, error) {
			v, err := fa.Get(context.Background())
			if err != nil {
				return *new(B), err
			}
			return f(v)().Get(context.Background())
		})
	}
}

// Flatten collapses a producer of a producer into a single producer.
func Flatten[A any](a Async[Async[A]]) Async[A] {
	return Bind(a, func(inner Async[A]) Async[A] { return inner })
}

// Delay returns a producer that, once started, sleeps for at least d before
// the wrapped producer begins.  A negative duration is treated as zero.
func Delay[A any](a Async[A], d time.Duration) Async[A] {
	wait := d
	if wait < 0 {
		wait = 0
	}

	return func() *futures.Future[A] {
		return futures.FromFunc(func() (A, error) {
			time.Sleep(wait)
			return a().Get(context.Background())
		})
	}
}

// Tee invokes f with the completed value and passes the value through
// unchanged.  f must not mutate its argument; this is not enforced.
func Tee[A any](a Async[A], f func(A)) Async[A] {
	return Map(a, func(v A) A {
		f(v)
		return v
	})
}
