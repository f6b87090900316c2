package async

import (
	"context"

	"github.com/go-fpkit/fpkit/futures"
)

// Sequential combines a list of producers into one that runs them one at a
// time, in order.  Each producer is invoked only after the previous future
// has resolved, so side effects across steps are strictly ordered and the
// total cost is the sum of the steps.  The yielded slice matches the input
// order.  The first failed step fails the combined producer and the
// remaining steps never start.
func Sequential[A any](list []Async[A]) Async[[]A] {
	return func() *futures.Future[[]A] {
		return futures.FromFunc(func() ([]A, error) {
			out := make([]A, 0, len(list))

			for _, a := range list {
				v, err := a().Get(context.Background())
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}

			return out, nil
		})
	}
}

// Parallel combines a list of producers into one that starts them all
// concurrently.  Completion order is unspecified, but the yielded slice
// matches the input order position for position.  Any single failure fails
// the combined producer; no partial results are recovered.
func Parallel[A any](list []Async[A]) Async[[]A] {
	return func() *futures.Future[[]A] {
		fs := make([]*futures.Future[A], len(list))
		for i, a := range list {
			fs[i] = a()
		}

		return futures.FromFunc(func() ([]A, error) {
			out := make([]A, len(fs))

			for i, f := range fs {
				v, err := f.Get(context.Background())
				if err != nil {
					return nil, err
				}
				out[i] = v
			}

			return out, nil
		})
	}
}
