// Package fn provides left-to-right function composition helpers.  Pipe
// applies a value through a chain of functions; Flow builds the composed
// function without applying it.  Go generics have no variadic type
// parameters, so both come in fixed arities.
package fn

// Identity returns its argument unchanged.
func Identity[A any](a A) A {
	return a
}

// Pipe2 applies two functions left to right.
func Pipe2[A any, B any, C any](a A, f func(A) B, g func(B) C) C {
	return g(f(a))
}

// Pipe3 applies three functions left to right.
func Pipe3[A any, B any, C any, D any](a A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(a)))
}

// Pipe4 applies four functions left to right.
func Pipe4[A any, B any, C any, D any, E any](a A, f func(A) B, g func(B) C, h func(C) D, i func(D) E) E {
	return i(h(g(f(a))))
}

// Pipe5 applies five functions left to right.
func Pipe5[A any, B any, C any, D any, E any, F any](a A, f func(A) B, g func(B) C, h func(C) D, i func(D) E, j func(E) F) F {
	return j(i(h(g(f(a)))))
}

// Flow2 composes two functions left to right.
func Flow2[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Flow3 composes three functions left to right.
func Flow3[A any, B any, C any, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Flow4 composes four functions left to right.
func Flow4[A any, B any, C any, D any, E any](f func(A) B, g func(B) C, h func(C) D, i func(D) E) func(A) E {
	return func(a A) E {
		return i(h(g(f(a))))
	}
}

// Flow5 composes five functions left to right.
func Flow5[A any, B any, C any, D any, E any, F any](f func(A) B, g func(B) C, h func(C) D, i func(D) E, j func(E) F) func(A) F {
	return func(a A) F {
		return j(i(h(g(f(a)))))
	}
}
