// Package ratelimit meters how fast submitted producers are allowed to start.
// It layers a token bucket strictly on top of the async producer contract:
// producers are unchanged, only the moment they begin is gated.
package ratelimit

import (
	"context"

	"github.com/go-fpkit/fpkit/async"
	"github.com/go-fpkit/fpkit/futures"
	"github.com/go-fpkit/fpkit/internal/pending"
	"golang.org/x/time/rate"
)

// RateLimiter starts submitted producers no faster than the configured rate
// allows.  Submissions pass through a bounded queue; a single worker waits
// for a token per task and then starts the producer on its own goroutine.
type RateLimiter[A any] struct {
	limiter  *rate.Limiter
	taskChan chan pending.Task[A]

	submit pending.SubmitFunction[A]
}

// New creates a RateLimiter from the provided options.  Invalid options panic.
func New[A any](opts Opts) *RateLimiter[A] {
	opts.validate()

	rl := &RateLimiter[A]{
		limiter:  rate.NewLimiter(rate.Limit(opts.Limit), opts.Burst),
		taskChan: make(chan pending.Task[A], opts.MaxQueueDepth),
		submit:   pending.GetSubmitFunction[A](pending.FullQueueStrategy(opts.FullQueueStrategy)),
	}

	rl.startWorker()

	return rl
}

func (rl *RateLimiter[A]) startWorker() {
	go func() {
		for {
			task, ok := <-rl.taskChan
			if !ok {
				return
			}

			if err := rl.limiter.Wait(task.Ctx); err != nil {
				task.Future.Fail(err)
				continue
			}

			rl.runTask(task)
		}
	}()
}

func (rl *RateLimiter[A]) runTask(task pending.Task[A]) {
	go func() {
		v, err := task.Run().Get(task.Ctx)
		if err != nil {
			task.Future.Fail(err)
			return
		}
		task.Future.Complete(v)
	}()
}

// Submit queues the producer and blocks until it has been started and has
// completed, or until the context is done.
func (rl *RateLimiter[A]) Submit(ctx context.Context, a async.Async[A]) (A, error) {
	f := rl.SubmitF(ctx, a)
	return f.Get(ctx)
}

// SubmitF queues the producer and returns the future its outcome will be
// delivered on.  A rejected submission is reported by failing the future.
func (rl *RateLimiter[A]) SubmitF(ctx context.Context, a async.Async[A]) *futures.Future[A] {
	task := pending.NewTask(ctx, a)
	if err := rl.submit(rl.taskChan, task); err != nil {
		task.Future.Fail(err)
	}
	return task.Future
}

// Wrap returns a lazy producer that, when started, submits the underlying
// producer through this limiter.  The provided context governs queueing and
// token waits for every start of the wrapped producer.
func (rl *RateLimiter[A]) Wrap(ctx context.Context, a async.Async[A]) async.Async[A] {
	return func() *futures.Future[A] {
		return rl.SubmitF(ctx, a)
	}
}

// Close stops the worker.  Submitting after Close panics.
func (rl *RateLimiter[A]) Close() {
	close(rl.taskChan)
}
