package validation

// Ap applies a validated function to a validated argument. It succeeds only
// when both operands succeed; when both fail, v's errors precede f's in the
// result. This ordering makes aggregate error reports deterministic.
func Ap[T, U, E any](v Validation[T, E], f Validation[func(T) U, E]) Validation[U, E] {
	switch {
	case v.errs == nil && f.errs == nil:
		return Ok[U, E](f.value(v.value))
	case v.errs == nil:
		return Validation[U, E]{errs: f.errs}
	case f.errs == nil:
		return Validation[U, E]{errs: v.errs}
	default:
		merged := v.errs.Append(*f.errs)
		return Validation[U, E]{errs: &merged}
	}
}

// Merge combines two same-typed validations into one holding both values, in
// order [a, b]. Errors accumulate exactly as in Ap: a's errors first. Useful
// when several checks apply to the same field.
func Merge[T, E any](a, b Validation[T, E]) Validation[[]T, E] {
	pair := Map(b, func(bv T) func(T) []T {
		return func(av T) []T { return []T{av, bv} }
	})
	return Ap(a, pair)
}

// Combine2 folds two independent validations into one aggregate. combine runs
// only when both succeed; otherwise errors accumulate left to right.
func Combine2[A, B, R, E any](a Validation[A, E], b Validation[B, E], combine func(A, B) R) Validation[R, E] {
	bf := Map(b, func(bv B) func(A) R {
		return func(av A) R { return combine(av, bv) }
	})
	return Ap(a, bf)
}

// Combine3 folds three independent validations into one aggregate, with
// errors accumulated in argument order.
func Combine3[A, B, C, R, E any](a Validation[A, E], b Validation[B, E], c Validation[C, E], combine func(A, B, C) R) Validation[R, E] {
	cf := Map(c, func(cv C) func(B) func(A) R {
		return func(bv B) func(A) R {
			return func(av A) R { return combine(av, bv, cv) }
		}
	})
	return Ap(a, Ap(b, cf))
}

// Combine4 folds four independent validations into one aggregate, with
// errors accumulated in argument order. For higher arities compose Ap
// directly or nest Combine calls.
func Combine4[A, B, C, D, R, E any](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], combine func(A, B, C, D) R) Validation[R, E] {
	df := Map(d, func(dv D) func(C) func(B) func(A) R {
		return func(cv C) func(B) func(A) R {
			return func(bv B) func(A) R {
				return func(av A) R { return combine(av, bv, cv, dv) }
			}
		}
	})
	return Ap(a, Ap(b, Ap(c, df)))
}
