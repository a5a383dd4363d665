package validation

import "errors"

// FromError lifts a conventional fail-fast (value, error) pair into a
// Validation, so existing checks can join an accumulating chain without
// being rewritten. A nil error becomes Ok, anything else a single-error
// failure.
func FromError[T any](value T, err error) Validation[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// Result converts an accumulated outcome back into the fail-fast convention.
// A success returns (value, nil); a failure returns T's zero value and the
// accumulated errors combined with errors.Join, so errors.Is and errors.As
// keep working against each individual error.
func Result[T any](v Validation[T, error]) (T, error) {
	if v.errs == nil {
		return v.value, nil
	}
	var zero T
	return zero, errors.Join(v.errs.All()...)
}
