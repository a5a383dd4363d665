package validation

import "github.com/dmitrymomot/validation/nonempty"

// Collect folds a slice of validations into a single validation of a slice.
// When every element is Ok the result holds all values in input order; when
// any element fails the result holds every error from every failing element,
// in input order, and successful elements contribute nothing. An empty input
// yields Ok of an empty slice.
func Collect[A, E any](vs []Validation[A, E]) Validation[[]A, E] {
	values := make([]A, 0, len(vs))
	var errs *nonempty.Seq[E]

	for _, v := range vs {
		if v.errs == nil {
			values = append(values, v.value)
			continue
		}
		if errs == nil {
			errs = v.errs
		} else {
			merged := errs.Append(*v.errs)
			errs = &merged
		}
	}

	if errs != nil {
		return Validation[[]A, E]{errs: errs}
	}
	return Ok[[]A, E](values)
}
