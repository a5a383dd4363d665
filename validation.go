package validation

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/validation/nonempty"
)

// Validation is the outcome of one or more independent checks: either a
// success carrying a value of type T, or a failure carrying a non-empty
// sequence of errors of type E. The zero value is Ok of T's zero value.
type Validation[T, E any] struct {
	value T
	errs  *nonempty.Seq[E]
}

// Ok returns a successful validation holding value.
func Ok[T, E any](value T) Validation[T, E] {
	return Validation[T, E]{value: value}
}

// Err returns a failed validation holding a single error.
func Err[T, E any](err E) Validation[T, E] {
	errs := nonempty.Of(err)
	return Validation[T, E]{errs: &errs}
}

// Errs returns a failed validation holding an already accumulated error
// sequence.
func Errs[T, E any](errs nonempty.Seq[E]) Validation[T, E] {
	return Validation[T, E]{errs: &errs}
}

// IsOk reports whether the validation succeeded.
func (v Validation[T, E]) IsOk() bool {
	return v.errs == nil
}

// IsErr reports whether the validation failed.
func (v Validation[T, E]) IsErr() bool {
	return v.errs != nil
}

// Value returns the success value. The boolean is false when the validation
// failed, in which case the returned value is T's zero value.
func (v Validation[T, E]) Value() (T, bool) {
	if v.errs != nil {
		var zero T
		return zero, false
	}
	return v.value, true
}

// Errors returns the accumulated errors. The boolean is false when the
// validation succeeded, in which case the returned sequence is meaningless.
func (v Validation[T, E]) Errors() (nonempty.Seq[E], bool) {
	if v.errs == nil {
		return nonempty.Seq[E]{}, false
	}
	return *v.errs, true
}

// String renders the validation for diagnostics and test output. It is not
// a substitute for caller-side error reporting.
func (v Validation[T, E]) String() string {
	if v.errs == nil {
		return fmt.Sprintf("Ok(%v)", v.value)
	}
	parts := make([]string, 0, v.errs.Len())
	for _, e := range v.errs.All() {
		parts = append(parts, fmt.Sprintf("%v", e))
	}
	return fmt.Sprintf("Errs(%s)", strings.Join(parts, "; "))
}
