package result

import "github.com/go-fpkit/fpkit/option"

// OfOption converts an Option into a Result.  A present value becomes Ok;
// an absent one becomes an Err carrying the value produced by onNone.
func OfOption[A any, E any](o option.Option[A], onNone func() E) Result[A, E] {
	return option.Match(o,
		func(a A) Result[A, E] { return Ok[A, E](a) },
		func() Result[A, E] { return Err[A, E](onNone()) },
	)
}
