// Package validation provides a generic outcome type that accumulates every
// validation error instead of stopping at the first one.
//
// A Validation[T, E] is either Ok, carrying a single value of type T, or
// Errs, carrying a non-empty sequence of errors of type E. Unlike the
// conventional fail-fast (value, error) pair, combining two failed
// validations concatenates their errors, so checking a form with five bad
// fields reports all five problems in one pass.
//
// # Architecture
//
// The package is a small set of pure functions over one value type. Because
// Go methods cannot introduce type parameters, transformations that change T
// or E are package-level functions (Map, MapErr, Ap, Combine2, ...). Errors
// live in a nonempty.Seq, so a failed validation can never carry zero errors;
// there is no hidden state and no side effects, making every value safe to
// share across goroutines.
//
// Combinators fall into three groups:
//
//   - Transforms: Map changes the success value, MapErr rewrites each error,
//     MapErrs collapses a whole error sequence into one higher-level error.
//   - Composition: Ap applies a validated function to a validated argument,
//     Merge pairs two same-typed checks, Combine2/3/4 fold independent
//     field checks into one aggregate. Error order is always left to right.
//   - Collection: Collect folds a slice of validations into a validation of
//     a slice, keeping every error from every failing element.
//
// # Usage
//
//	name := validateName(form.Name)    // Validation[Name, FormError]
//	email := validateEmail(form.Email) // Validation[Email, FormError]
//	age := validateAge(form.Age)       // Validation[Age, FormError]
//
//	account := validation.Combine3(name, email, age,
//		func(n Name, e Email, a Age) Account {
//			return Account{Name: n, Email: e, Age: a}
//		})
//
//	if errs, failed := account.Errors(); failed {
//		// errs.All() holds every field error, in field order
//	}
//
// # Error Handling
//
// Existing fail-fast checks enter the accumulating world through FromError,
// and Result converts an accumulated outcome back into a single error via
// errors.Join. Reporting and formatting stay with the caller; String exists
// for diagnostics only.
package validation
