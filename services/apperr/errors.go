// Package apperr defines the closed error taxonomy shared by the service
// layer. Callers discriminate on Kind, never on type names or message text.
package apperr

import (
	"errors"
	"fmt"

	"roomly/models"
)

// Kind classifies a service error.
type Kind int

const (
	// KindInternal is the zero value; anything unclassified maps here.
	KindInternal Kind = iota
	// KindValidation: malformed input shape (bad timestamps, empty fields).
	KindValidation
	// KindNotFound: the referenced entity does not exist, or is invisible to
	// the caller. The two cases are deliberately indistinguishable.
	KindNotFound
	// KindConflict: the requested interval overlaps an occupying reservation.
	KindConflict
	// KindBusiness: a rule violation that is not a conflict (past booking,
	// window/duration violations, illegal status transitions, delete guards).
	KindBusiness
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBusiness:
		return "business"
	default:
		return "internal"
	}
}

// Error is the single error type raised by the services.
type Error struct {
	Kind    Kind
	Message string
	// Conflicting holds the blocking reservation for KindConflict so the
	// caller can report which interval is taken.
	Conflicting *models.Reservation
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Business(msg string) *Error   { return &Error{Kind: KindBusiness, Message: msg} }

func Conflict(msg string, blocking *models.Reservation) *Error {
	return &Error{Kind: KindConflict, Message: msg, Conflicting: blocking}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf extracts the kind from any error; unclassified errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As returns the typed error when err carries one.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
