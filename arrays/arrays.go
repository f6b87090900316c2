// Package arrays provides ordinary slice helpers used alongside the option
// and result types.  Absence-returning helpers such as Head and Last yield an
// option.Option rather than a (value, ok) pair so they compose with the rest
// of the library.
package arrays

import "github.com/go-fpkit/fpkit/option"

// Map applies f to every element and returns the transformed slice.
func Map[T any, U any](s []T, f func(T) U) []U {
	out := make([]U, 0, len(s))
	for _, v := range s {
		out = append(out, f(v))
	}
	return out
}

// Filter returns the elements for which pred is true, preserving order.
func Filter[T any](s []T, pred func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds the slice left to right starting from init.
func Reduce[T any, U any](s []T, init U, f func(U, T) U) U {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// Flatten concatenates a slice of slices into one.
func Flatten[T any](s [][]T) []T {
	n := 0
	for _, inner := range s {
		n += len(inner)
	}

	out := make([]T, 0, n)
	for _, inner := range s {
		out = append(out, inner...)
	}
	return out
}

// Head returns the first element, or None for an empty slice.
func Head[T any](s []T) option.Option[T] {
	if len(s) == 0 {
		return option.None[T]()
	}
	return option.Some(s[0])
}

// Last returns the last element, or None for an empty slice.
func Last[T any](s []T) option.Option[T] {
	if len(s) == 0 {
		return option.None[T]()
	}
	return option.Some(s[len(s)-1])
}
