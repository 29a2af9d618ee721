package errs

import "errors"

// Kind groups errors into the categories callers react to.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindPreconditionFailed
	KindNotFound
	KindUnauthorized
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindUnexpected:
		return "unexpected"
	}
	return "unexpected"
}

// KindOf classifies err. A nil error and any error outside the package family are KindUnexpected.
// PreconditionFailed is checked first because it is also a validation failure for reporting purposes.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnexpected
	case errors.Is(err, ErrPreconditionFailed):
		return KindPreconditionFailed
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrVersionIsInvalid):
		return KindValidation
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrConflict):
		return KindConflict
	}
	return KindUnexpected
}

// IsValidation reports whether err is a validation or precondition failure.
func IsValidation(err error) bool {
	k := KindOf(err)
	return k == KindValidation || k == KindPreconditionFailed
}
