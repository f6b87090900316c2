// Package nonempty provides a slice that is guaranteed to hold at least one
// element.  The guarantee lives in the constructors: Of always succeeds,
// FromSlice returns None for an empty input, and no operation can remove the
// last element.
package nonempty

import "github.com/go-fpkit/fpkit/option"

// NonEmpty is a list with a guaranteed first element.
type NonEmpty[T any] struct {
	head T
	tail []T
}

// Of builds a NonEmpty from a first element and any number of further ones.
func Of[T any](head T, tail ...T) NonEmpty[T] {
	return NonEmpty[T]{head: head, tail: tail}
}

// FromSlice converts a slice into a NonEmpty, or None if the slice is empty.
func FromSlice[T any](s []T) option.Option[NonEmpty[T]] {
	if len(s) == 0 {
		return option.None[NonEmpty[T]]()
	}
	return option.Some(Of(s[0], s[1:]...))
}

// Head returns the first element.
func (n NonEmpty[T]) Head() T {
	return n.head
}

// Tail returns the elements after the first; it may be empty.
func (n NonEmpty[T]) Tail() []T {
	return n.tail
}

// Len returns the number of elements, always at least one.
func (n NonEmpty[T]) Len() int {
	return 1 + len(n.tail)
}

// ToSlice returns all elements as a plain slice.
func (n NonEmpty[T]) ToSlice() []T {
	out := make([]T, 0, n.Len())
	out = append(out, n.head)
	out = append(out, n.tail...)
	return out
}

// Map applies f to every element.
func Map[T any, U any](n NonEmpty[T], f func(T) U) NonEmpty[U] {
	tail := make([]U, 0, len(n.tail))
	for _, v := range n.tail {
		tail = append(tail, f(v))
	}
	return NonEmpty[U]{head: f(n.head), tail: tail}
}
