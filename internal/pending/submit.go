package pending

import (
	"context"
	"errors"
	"log"
)

// ErrQueueFull is returned by the ErrorWhenFull strategy when the submission
// queue has no capacity left.
var ErrQueueFull = errors.New("submission queue is full")

// FullQueueStrategy selects what happens when a bounded submission queue is full.
type FullQueueStrategy int

const (
	// BlockWhenFull exerts back pressure by blocking the submitter until
	// space is available or its context is done.
	BlockWhenFull FullQueueStrategy = iota
	// ErrorWhenFull immediately rejects the submission with ErrQueueFull.
	ErrorWhenFull
)

// SubmitFunction places a task on the queue according to a full-queue strategy.
type SubmitFunction[A any] func(taskChan chan<- Task[A], t Task[A]) error

// GetSubmitFunction returns the SubmitFunction for the given strategy.
func GetSubmitFunction[A any](s FullQueueStrategy) SubmitFunction[A] {
	switch s {
	case BlockWhenFull:
		return blockWhenFull[A]
	case ErrorWhenFull:
		return errorWhenFull[A]
	default:
		log.Panicf("invalid full queue strategy value %d", s)
	}
	return blockWhenFull[A]
}

func blockWhenFull[A any](taskChan chan<- Task[A], t Task[A]) error {
	select {
	case taskChan <- t:
		return nil
	case <-t.Ctx.Done():
		return context.Canceled
	}
}

func errorWhenFull[A any](taskChan chan<- Task[A], t Task[A]) error {
	select {
	case taskChan <- t:
		return nil
	default:
		return ErrQueueFull
	}
}
