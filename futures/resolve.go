package futures

import (
	"context"

	"github.com/go-fpkit/fpkit/result"
)

// ResolveAll waits for every provided Future and returns one result.Result per
// future, at the index corresponding to the input slice.  A failed future
// becomes an Err at its position; the remaining futures are still awaited.
// If the provided context is canceled the cancellation error is returned and
// the collected results are discarded.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]result.Result[T, error], error) {
	res := make([]result.Result[T, error], 0, len(fs))

	for _, f := range fs {
		v, err := f.Get(ctx)
		if err != nil {
			res = append(res, result.Err[T, error](err))
		} else {
			res = append(res, result.Ok[T, error](v))
		}
		// check for cancellation at the end of the loop to avoid racing a
		// cancel against Getting the last value in the list
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}
