// Package asyncresult composes async and result: an AsyncResult is a deferred
// computation that, once started, yields a result.Result.  It introduces no
// third representation; laziness comes from async's producer model and
// explicit failure from result's sum type.
//
// Every combinator here is deferred.  None of the wrapped logic executes
// until the composed producer is started, and Bind short-circuits: when the
// upstream producer yields an Err, the downstream step is never invoked and
// the Err propagates as-is.
package asyncresult

import (
	"context"

	"github.com/go-fpkit/fpkit/async"
	"github.com/go-fpkit/fpkit/futures"
	"github.com/go-fpkit/fpkit/option"
	"github.com/go-fpkit/fpkit/result"
)

// AsyncResult is a deferred computation yielding either a success of type A
// or a failure of type E.  It is async.Async specialized to a Result payload.
type AsyncResult[A any, E any] func() *futures.Future[result.Result[A, E]]

// Ok returns a producer that completes immediately with a success.
func Ok[A any, E any](a A) AsyncResult[A, E] {
	return OfResult(result.Ok[A, E](a))
}

// Err returns a producer that completes immediately with a failure.
func Err[A any, E any](e E) AsyncResult[A, E] {
	return OfResult(result.Err[A, E](e))
}

// OfResult lifts an already computed Result into a producer.
func OfResult[A any, E any](r result.Result[A, E]) AsyncResult[A, E] {
	return func() *futures.Future[result.Result[A, E]] {
		return futures.Completed(r)
	}
}

// OfAsync lifts an infallible producer; its value arrives as an Ok.
func OfAsync[A any, E any](a async.Async[A]) AsyncResult[A, E] {
	return func() *futures.Future[result.Result[A, E]] {
		fa := a()
		return futures.FromFunc(func() (result.Result[A, E], error) {
			v, err := fa.Get(context.Background())
			if err != nil {
				return result.Result[A, E]{}, err
			}
			return result.Ok[A, E](v), nil
		})
	}
}

// OfOption converts an Option into an immediate producer: Some becomes Ok,
// None becomes Err carrying the value produced by onNone.
func OfOption[A any, E any](o option.Option[A], onNone func() E) AsyncResult[A, E] {
	return OfResult(result.OfOption(o, onNone))
}

// TryCatch lifts an asynchronous operation that may fail.  The operation does
// not run until the producer is started; a non-nil error is caught and
// converted into an Err rather than failing the future.
func TryCatch[A any](do func() (A, error)) AsyncResult[A, error] {
	return func() *futures.Future[result.Result[A, error]] {
		return futures.FromFunc(func() (result.Result[A, error], error) {
			return result.TryCatch(do), nil
		})
	}
}

// TryCatchWith is TryCatch with the caught error transformed into the
// caller's error type via onErr.
func TryCatchWith[A any, E any](do func() (A, error), onErr func(error) E) AsyncResult[A, E] {
	return func() *futures.Future[result.Result[A, E]] {
		return futures.FromFunc(func() (result.Result[A, E], error) {
			return result.TryCatchWith(do, onErr), nil
		})
	}
}

// Start invokes the producer and awaits its Result.  The context bounds the
// wait only; it does not abort work that has begun.  The returned error is
// the abrupt-failure channel: a represented failure arrives inside the Result.
func Start[A any, E any](ctx context.Context, ar AsyncResult[A, E]) (result.Result[A, E], error) {
	return ar().Get(ctx)
}

// Map applies f to a success value once the producer completes.  An Err
// passes through unchanged and f is never invoked.
func Map[A any, B any, E any](ar AsyncResult[A, E], f func(A) B) AsyncResult[B, E] {
	return transform(ar, func(r result.Result[A, E]) result.Result[B, E] {
		return result.Map(r, f)
	})
}

// MapErr applies f to a failure value, leaving a success untouched.
func MapErr[A any, E any, F any](ar AsyncResult[A, E], f func(E) F) AsyncResult[A, F] {
	return transform(ar, func(r result.Result[A, E]) result.Result[A, F] {
		return result.MapErr(r, f)
	})
}

// MapBoth applies f to a success value or g to a failure value.
func MapBoth[A any, B any, E any, F any](ar AsyncResult[A, E], f func(A) B, g func(E) F) AsyncResult[B, F] {
	return transform(ar, func(r result.Result[A, E]) result.Result[B, F] {
		return result.MapBoth(r, f, g)
	})
}

// Tee invokes f with a success value and passes the Result through unchanged.
func Tee[A any, E any](ar AsyncResult[A, E], f func(A)) AsyncResult[A, E] {
	return transform(ar, func(r result.Result[A, E]) result.Result[A, E] {
		return r.Tee(f)
	})
}

// TeeErr invokes f with a failure value and passes the Result through unchanged.
func TeeErr[A any, E any](ar AsyncResult[A, E], f func(E)) AsyncResult[A, E] {
	return transform(ar, func(r result.Result[A, E]) result.Result[A, E] {
		return r.TeeErr(f)
	})
}

// Bind sequences a fallible deferred step after ar.  Once started, ar runs to
// completion; on an Ok, f builds the next producer, which is itself started
// and awaited.  On an Err the downstream function is never invoked and the
// Err propagates directly, so no unnecessary work runs after a failure.
func Bind[A any, B any, E any](ar AsyncResult[A, E], f func(A) AsyncResult[B, E]) AsyncResult[B, E] {
	return func() *futures.Future[result.Result[B, E]] {
		fa := ar()
		return futures.FromFunc(func() (result.Result[B, E], error) {
			r, err := fa.Get(context.Background())
			if err != nil {
				return result.Result[B, E]{}, err
			}

			if e, isErr := r.Error(); isErr {
				return result.Err[B, E](e), nil
			}

			a, _ := r.Value()
			return f(a)().Get(context.Background())
		})
	}
}

// DefaultValue reduces the producer to an infallible one, substituting def
// for a failure.
func DefaultValue[A any, E any](ar AsyncResult[A, E], def A) async.Async[A] {
	return reduce(ar, func(r result.Result[A, E]) A {
		return r.DefaultValue(def)
	})
}

// DefaultWith reduces the producer to an infallible one, computing the
// replacement from the failure value.  f is only invoked on an Err.
func DefaultWith[A any, E any](ar AsyncResult[A, E], f func(E) A) async.Async[A] {
	return reduce(ar, func(r result.Result[A, E]) A {
		return r.DefaultWith(f)
	})
}

func transform[A any, B any, E any, F any](
	ar AsyncResult[A, E],
	f func(result.Result[A, E]) result.Result[B, F],
) AsyncResult[B, F] {
	return func() *futures.Future[result.Result[B, F]] {
		fa := ar()
		return futures.FromFunc(func() (result.Result[B, F], error) {
			r, err := fa.Get(context.Background())
			if err != nil {
				return result.Result[B, F]{}, err
			}
			return f(r), nil
		})
	}
}

func reduce[A any, E any](ar AsyncResult[A, E], f func(result.Result[A, E]) A) async.Async[A] {
	return func() *futures.Future[A] {
		fa := ar()
		return futures.FromFunc(func() (A, error) {
			r, err := fa.Get(context.Background())
			if err != nil {
				return *new(A), err
			}
			return f(r), nil
		})
	}
}
