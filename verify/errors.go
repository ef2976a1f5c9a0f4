package verify

import (
	"errors"
	"maps"
)

// Kind classifies a verification failure so callers can handle failures selectively.
type Kind int

const (
	// MissingArgument means the subject itself is nil where the verification forbids that.
	MissingArgument Kind = iota + 1
	// InvalidArgument means the subject, or an element of it, has the wrong type, fails the predicate, or is a forbidden nil element.
	InvalidArgument
	// InvalidVerificationParameter means a parameter passed to the verification itself is malformed.
	InvalidVerificationParameter
	// ProgrammerError means the chain API was misused. It's never a data problem.
	ProgrammerError
)

var (
	ErrMissingArgument              = errors.New("missing argument")
	ErrInvalidArgument              = errors.New("invalid argument")
	ErrInvalidVerificationParameter = errors.New("invalid verification parameter")
	ErrProgrammerError              = errors.New("programmer error")
)

func (k Kind) String() string {
	switch k {
	case MissingArgument:
		return "missing_argument"
	case InvalidArgument:
		return "invalid_argument"
	case InvalidVerificationParameter:
		return "invalid_verification_parameter"
	case ProgrammerError:
		return "programmer_error"
	default:
		return "unknown"
	}
}

// Sentinel returns the error value that [errors.Is] matches for this Kind.
func (k Kind) Sentinel() error {
	switch k {
	case MissingArgument:
		return ErrMissingArgument
	case InvalidArgument:
		return ErrInvalidArgument
	case InvalidVerificationParameter:
		return ErrInvalidVerificationParameter
	default:
		return ErrProgrammerError
	}
}

// Error is returned by every failed verification.
// The message is complete on its own; the accessors exist so that callers can branch without parsing it.
//
// Use [errors.Is] with ErrMissingArgument, ErrInvalidArgument, ErrInvalidVerificationParameter, or ErrProgrammerError to match a [Kind].
type Error struct {
	kind         Kind
	msg          string
	verification string
	subject      string
	index        int
	hasIndex     bool
	data         map[string]string
}

func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns the sentinel for the error's [Kind].
func (e *Error) Unwrap() error {
	return e.kind.Sentinel()
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Verification returns the name of the verification that failed.
// It's empty for chain misuse that happened before a verification was resolved.
func (e *Error) Verification() string {
	return e.verification
}

func (e *Error) SubjectName() string {
	return e.subject
}

// ElementIndex returns the position of the offending element in element mode.
func (e *Error) ElementIndex() (int, bool) {
	return e.index, e.hasIndex
}

// Data returns a copy of the extra data attached to the chain.
func (e *Error) Data() map[string]string {
	return maps.Clone(e.data)
}

// KindOf returns the [Kind] of any error produced by this package.
// The bool result is false if err doesn't carry a Kind.
func KindOf(err error) (Kind, bool) {
	var kinded interface{ Kind() Kind }
	if errors.As(err, &kinded) {
		return kinded.Kind(), true
	}
	return 0, false
}

// classify maps a failure to its Kind.
// A nil root subject is a missing argument, but a nil element of a present sequence is only an invalid one.
func classify(f *failure) Kind {
	switch f.reason {
	case reasonNullSubject:
		if f.element {
			return InvalidArgument
		}
		return MissingArgument
	case reasonTypeNotApplicable, reasonPredicateFailed:
		return InvalidArgument
	case reasonParameterInvalid:
		return InvalidVerificationParameter
	default:
		return ProgrammerError
	}
}
