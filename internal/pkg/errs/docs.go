// Package errs provides the error vocabulary shared by the eshift domain, application and adapters.
//
// Every error type follows the same shape:
//   - a sentinel variable (ErrValueIsRequired, ErrConflict, ...)
//   - a struct with the offending parameter and an optional cause
//   - NewXxxError / NewXxxErrorWithCause constructors
//   - Unwrap returning the sentinel so callers can use errors.Is
//
// Callers that must react to a category rather than a concrete type use KindOf:
//
//	switch errs.KindOf(err) {
//	case errs.KindNotFound:
//	    // 404
//	case errs.KindConflict:
//	    // 409, caller resubmits with fresh data
//	}
//
// Validation and precondition failures are reported with field or rule attribution;
// anything that is not part of the family is KindUnexpected and must not leak to users.
package errs
