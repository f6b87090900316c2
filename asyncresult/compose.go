package asyncresult

import (
	"context"

	"github.com/go-fpkit/fpkit/async"
	"github.com/go-fpkit/fpkit/futures"
	"github.com/go-fpkit/fpkit/result"
)

// Map2 combines two producers sharing the same error type.  Once the
// combined producer is started, both run to completion in order (first a,
// then b); the outcomes are then combined with result.Map2, so on failure
// the first Err in positional order wins.
func Map2[A any, B any, C any, E any](f func(A, B) C, a AsyncResult[A, E], b AsyncResult[B, E]) AsyncResult[C, E] {
	return func() *futures.Future[result.Result[C, E]] {
		fa := a()
		return futures.FromFunc(func() (result.Result[C, E], error) {
			ra, err := fa.Get(context.Background())
			if err != nil {
				return result.Result[C, E]{}, err
			}

			rb, err := b().Get(context.Background())
			if err != nil {
				return result.Result[C, E]{}, err
			}

			return result.Map2(f, ra, rb), nil
		})
	}
}

// Map3 combines three producers with the same first-error precedence as Map2.
func Map3[A any, B any, C any, D any, E any](
	f func(A, B, C) D,
	a AsyncResult[A, E],
	b AsyncResult[B, E],
	c AsyncResult[C, E],
) AsyncResult[D, E] {
	return func() *futures.Future[result.Result[D, E]] {
		fa := a()
		return futures.FromFunc(func() (result.Result[D, E], error) {
			ra, err := fa.Get(context.Background())
			if err != nil {
				return result.Result[D, E]{}, err
			}

			rb, err := b().Get(context.Background())
			if err != nil {
				return result.Result[D, E]{}, err
			}

			rc, err := c().Get(context.Background())
			if err != nil {
				return result.Result[D, E]{}, err
			}

			return result.Map3(f, ra, rb, rc), nil
		})
	}
}

// Sequential combines a list of producers into one that runs them one at a
// time, in order, per async.Sequential's ordering rules.  It does not
// short-circuit: every entry runs regardless of individual failures, and
// every Result is collected at its input position.  Callers wanting
// skip-on-failure sequencing should chain Bind instead.
func Sequential[A any, E any](list []AsyncResult[A, E]) async.Async[[]result.Result[A, E]] {
	producers := make([]async.Async[result.Result[A, E]], len(list))
	for i, ar := range list {
		producers[i] = async.Async[result.Result[A, E]](ar)
	}
	return async.Sequential(producers)
}

// Parallel combines a list of producers into one that starts them all
// concurrently, per async.Parallel's ordering rules.  Like Sequential it does
// not short-circuit: every entry runs and every Result is collected at its
// input position.
func Parallel[A any, E any](list []AsyncResult[A, E]) async.Async[[]result.Result[A, E]] {
	producers := make([]async.Async[result.Result[A, E]], len(list))
	for i, ar := range list {
		producers[i] = async.Async[result.Result[A, E]](ar)
	}
	return async.Parallel(producers)
}
