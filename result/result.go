// Package result provides a Result type representing the outcome of a computation
// that either succeeded with a value of type A or failed with an error of type E.
// The error channel is a concrete caller-chosen type, not necessarily a Go error.
//
// A Result is always in exactly one of its two states and is immutable after
// construction; every combinator returns a new Result.  Combinators never swallow
// a failure: Map, Bind and friends pass an Err through untouched without invoking
// any success-path function.
package result

import "fmt"

// Result holds either a success value of type A or an error value of type E.
// The zero value is an Err carrying the zero value of E; use Ok or Err to
// construct meaningful values.
type Result[A any, E any] struct {
	ok    bool
	value A
	err   E
}

// Ok creates a successful Result holding the provided value.
func Ok[A any, E any](a A) Result[A, E] {
	return Result[A, E]{ok: true, value: a}
}

// Err creates a failed Result holding the provided error value.
func Err[A any, E any](e E) Result[A, E] {
	return Result[A, E]{err: e}
}

// IsOk reports whether the Result is a success.
func (r Result[A, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result is a failure.
func (r Result[A, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success value and true, or the zero value and false.
func (r Result[A, E]) Value() (A, bool) {
	if r.ok {
		return r.value, true
	}
	return *new(A), false
}

// Error returns the error value and true, or the zero value and false.
func (r Result[A, E]) Error() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	return *new(E), false
}

// DefaultValue returns the success value, or def if the Result is an Err.
func (r Result[A, E]) DefaultValue(def A) A {
	if r.ok {
		return r.value
	}
	return def
}

// DefaultWith returns the success value, or computes a replacement from the
// error value.  f is only invoked on an Err.
func (r Result[A, E]) DefaultWith(f func(E) A) A {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

// Tee invokes f with the success value and returns the Result unchanged.
// f must not mutate its argument; this is not enforced.
func (r Result[A, E]) Tee(f func(A)) Result[A, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// TeeErr invokes f with the error value and returns the Result unchanged.
func (r Result[A, E]) TeeErr(f func(E)) Result[A, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Match reduces the Result to a single value by invoking onOk for a success
// or onErr for a failure.  Both handlers must be supplied, making the match
// exhaustive over the two states.
func Match[A any, E any, R any](r Result[A, E], onOk func(A) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Map applies f to the success value.  An Err passes through unchanged and
// f is never invoked.
func Map[A any, B any, E any](r Result[A, E], f func(A) B) Result[B, E] {
	if r.ok {
		return Ok[B, E](f(r.value))
	}
	return Err[B, E](r.err)
}

// MapErr applies f to the error value, leaving a success untouched.
func MapErr[A any, E any, F any](r Result[A, E], f func(E) F) Result[A, F] {
	if r.ok {
		return Ok[A, F](r.value)
	}
	return Err[A, F](f(r.err))
}

// MapBoth applies f to a success value or g to an error value.  It is
// equivalent to composing Map and MapErr.
func MapBoth[A any, B any, E any, F any](r Result[A, E], f func(A) B, g func(E) F) Result[B, F] {
	if r.ok {
		return Ok[B, F](f(r.value))
	}
	return Err[B, F](g(r.err))
}

// Bind sequences a fallible step after a successful Result.  On an Err the
// step is never invoked and the Err propagates.
func Bind[A any, B any, E any](r Result[A, E], f func(A) Result[B, E]) Result[B, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[B, E](r.err)
}

// Map2 combines two Results sharing the same error type.  f is applied only
// when both are Ok.  Otherwise the first Err in positional order is returned
// and the remaining Result is ignored.
func Map2[A any, B any, C any, E any](f func(A, B) C, ra Result[A, E], rb Result[B, E]) Result[C, E] {
	if !ra.ok {
		return Err[C, E](ra.err)
	}
	if !rb.ok {
		return Err[C, E](rb.err)
	}
	return Ok[C, E](f(ra.value, rb.value))
}

// Map3 combines three Results sharing the same error type with the same
// first-error precedence as Map2.
func Map3[A any, B any, C any, D any, E any](f func(A, B, C) D, ra Result[A, E], rb Result[B, E], rc Result[C, E]) Result[D, E] {
	if !ra.ok {
		return Err[D, E](ra.err)
	}
	if !rb.ok {
		return Err[D, E](rb.err)
	}
	if !rc.ok {
		return Err[D, E](rc.err)
	}
	return Ok[D, E](f(ra.value, rb.value, rc.value))
}

// TryCatch invokes f and wraps its outcome: a nil error becomes Ok, a non-nil
// error becomes Err.
func TryCatch[A any](f func() (A, error)) Result[A, error] {
	v, err := f()
	if err != nil {
		return Err[A, error](err)
	}
	return Ok[A, error](v)
}

// TryCatchWith invokes f and wraps its outcome, transforming a non-nil error
// into the caller's error type via onErr.
func TryCatchWith[A any, E any](f func() (A, error), onErr func(error) E) Result[A, E] {
	v, err := f()
	if err != nil {
		return Err[A, E](onErr(err))
	}
	return Ok[A, E](v)
}

// TryCatchPanic invokes f and converts a panic into the error channel.
// A panic value that is already an error is used as-is; anything else is
// stringified into one.  This is the only place the library catches a panic.
func TryCatchPanic[A any](f func() A) (r Result[A, error]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				r = Err[A, error](err)
				return
			}
			r = Err[A, error](fmt.Errorf("%v", p))
		}
	}()

	return Ok[A, error](f())
}
