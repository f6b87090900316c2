// Package workpool runs submitted producers on a fixed set of workers,
// bounding how many are in flight at once.  Like ratelimit, it layers on top
// of the async producer contract without changing it: a producer started by a
// worker behaves exactly as if the submitter had started it directly.
package workpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/go-fpkit/fpkit/async"
	"github.com/go-fpkit/fpkit/futures"
	"github.com/go-fpkit/fpkit/internal/pending"
)

// ErrQueueFull is reported when a submission is rejected by ErrorWhenFull.
var ErrQueueFull = pending.ErrQueueFull

// ErrStopped is reported when submitting to a pool that has been stopped.
var ErrStopped = errors.New("work pool has been stopped")

// FullQueueStrategy selects the behavior when too many producers are queued.
type FullQueueStrategy pending.FullQueueStrategy

const (
	// BlockWhenFull exerts back pressure by blocking the submitter when the
	// queue is at capacity.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(pending.BlockWhenFull)
	// ErrorWhenFull immediately rejects the submission when the queue is at
	// capacity.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(pending.ErrorWhenFull)
)

// Opts configures a Pool created by New.
type Opts struct {
	// MaxWorkers is the number of producers allowed to be in flight at once.
	MaxWorkers int
	// MaxQueueDepth bounds the number of queued submissions.
	MaxQueueDepth int
	// FullQueueStrategy determines the behavior when MaxQueueDepth is
	// exceeded.  The default blocks the submitter.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.MaxWorkers < 1 {
		panic("max workers must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("max queue depth must be 0 or greater")
	}
}

// Pool starts submitted producers on MaxWorkers worker goroutines.
type Pool[A any] struct {
	isStopping uint32

	taskChan chan pending.Task[A]
	submit   pending.SubmitFunction[A]

	waitSend *sync.WaitGroup
	waitStop *sync.WaitGroup
	stopOnce *sync.Once
}

// New creates a Pool from the provided options.  Invalid options panic.
func New[A any](opts Opts) *Pool[A] {
	opts.validate()

	p := &Pool[A]{
		taskChan: make(chan pending.Task[A], opts.MaxQueueDepth),
		submit:   pending.GetSubmitFunction[A](pending.FullQueueStrategy(opts.FullQueueStrategy)),
		waitSend: &sync.WaitGroup{},
		waitStop: &sync.WaitGroup{},
		stopOnce: &sync.Once{},
	}

	for i := 0; i < opts.MaxWorkers; i++ {
		p.waitStop.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pool[A]) worker() {
	defer p.waitStop.Done()

	for task := range p.taskChan {
		v, err := task.Run().Get(task.Ctx)
		if err != nil {
			task.Future.Fail(err)
			continue
		}
		task.Future.Complete(v)
	}
}

// Submit queues the producer and blocks until a worker has run it to
// completion, or until the context is done.
func (p *Pool[A]) Submit(ctx context.Context, a async.Async[A]) (A, error) {
	f, err := p.SubmitF(ctx, a)
	if err != nil {
		return *new(A), err
	}
	return f.Get(ctx)
}

// SubmitF queues the producer and returns the future its outcome will be
// delivered on.
func (p *Pool[A]) SubmitF(ctx context.Context, a async.Async[A]) (*futures.Future[A], error) {
	p.waitSend.Add(1)
	defer p.waitSend.Done()

	if atomic.LoadUint32(&p.isStopping) == 1 {
		return nil, ErrStopped
	}

	task := pending.NewTask(ctx, a)
	if err := p.submit(p.taskChan, task); err != nil {
		return nil, err
	}

	return task.Future, nil
}

// Stop drains in-flight submissions and shuts the workers down.  It blocks
// until every accepted task has been run.  Submissions made after Stop fail
// with ErrStopped.
func (p *Pool[A]) Stop() {
	p.stopOnce.Do(func() {
		atomic.StoreUint32(&p.isStopping, 1)
		p.waitSend.Wait()
		close(p.taskChan)
	})

	p.waitStop.Wait()
}
