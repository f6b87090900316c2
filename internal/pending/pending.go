// Package pending carries a queued producer together with the future its
// eventual outcome is delivered on.  It is shared plumbing for the ratelimit
// and workpool packages.
package pending

import (
	"context"

	"github.com/go-fpkit/fpkit/async"
	"github.com/go-fpkit/fpkit/futures"
)

// Task pairs a submitted producer with its delivery future.  The context is
// the submitter's; it bounds queue waits and the await of the producer's
// future, not the producer's own work.
type Task[A any] struct {
	Ctx    context.Context
	Run    async.Async[A]
	Future *futures.Future[A]
}

// NewTask wraps a producer for queuing with a fresh uncompleted future.
func NewTask[A any](ctx context.Context, run async.Async[A]) Task[A] {
	return Task[A]{
		Ctx:    ctx,
		Run:    run,
		Future: futures.New[A](),
	}
}
