package validation

import "github.com/dmitrymomot/validation/nonempty"

// Map applies f to the success value and leaves errors untouched. f runs at
// most once, only when v is Ok.
func Map[T, U, E any](v Validation[T, E], f func(T) U) Validation[U, E] {
	if v.errs != nil {
		return Validation[U, E]{errs: v.errs}
	}
	return Ok[U, E](f(v.value))
}

// MapErr rewrites every accumulated error through f, preserving order and
// count, and leaves a success untouched. f runs once per error.
func MapErr[T, E, G any](v Validation[T, E], f func(E) G) Validation[T, G] {
	if v.errs == nil {
		return Ok[T, G](v.value)
	}
	mapped := nonempty.Map(*v.errs, f)
	return Validation[T, G]{errs: &mapped}
}

// MapErrs collapses the whole error sequence into a single replacement error
// via f, and leaves a success untouched. This is how a field's multiple
// low-level errors become one tagged error in an aggregate error type.
func MapErrs[T, E, G any](v Validation[T, E], f func(nonempty.Seq[E]) G) Validation[T, G] {
	if v.errs == nil {
		return Ok[T, G](v.value)
	}
	collapsed := nonempty.Of(f(*v.errs))
	return Validation[T, G]{errs: &collapsed}
}
