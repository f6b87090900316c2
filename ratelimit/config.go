package ratelimit

import (
	"time"

	"github.com/go-fpkit/fpkit/internal/pending"
	"golang.org/x/time/rate"
)

// ErrQueueFull is reported when a submission is rejected by ErrorWhenFull.
var ErrQueueFull = pending.ErrQueueFull

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

// Limit is a rate expressed as producer starts per second.
type Limit = rate.Limit

// Every converts a minimum interval between starts into a Limit.
// For instance Every(100 * time.Millisecond) yields 10 starts per second.
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts configures a RateLimiter created by New.
type Opts struct {
	// Limit is the sustained rate of producer starts per second.
	Limit Limit
	// Burst is the size of the token bucket.
	Burst int
	// MaxQueueDepth bounds the number of queued submissions.
	MaxQueueDepth int
	// FullQueueStrategy determines the behavior when MaxQueueDepth is
	// exceeded.  The default blocks the submitter.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.Limit < 0 {
		panic("rate limit must be 0 or greater")
	}

	if o.Burst < 1 {
		panic("burst must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("max queue depth must be 0 or greater")
	}
}
