// Package option provides an Option type that represents a value which may be absent.
// An Option is either Some, carrying a value, or None.  It replaces nil-pointer and
// (value, ok) conventions with a single composable type that the result package can
// convert from via result.OfOption.
package option

// Option holds either a value of type T or nothing.  The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option containing the provided value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OfPointer converts a possibly nil pointer into an Option.
// A nil pointer becomes None, otherwise the pointed-to value is wrapped in Some.
func OfPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// GetOrElse returns the contained value or the provided default.
func (o Option[T]) GetOrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// ToPointer returns a pointer to the contained value, or nil for None.
func (o Option[T]) ToPointer() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// Match invokes onSome with the contained value, or onNone if the Option is empty.
// Both cases must be supplied, making the match exhaustive.
func Match[T any, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Map applies f to the contained value if present.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}

// Bind applies f, which itself returns an Option, to the contained value if present.
func Bind[T any, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.some {
		return f(o.value)
	}
	return None[U]()
}
