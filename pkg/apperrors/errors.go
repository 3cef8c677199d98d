package apperrors

import "errors"

// Error kinds. Services wrap these with a user-facing message; the API layer
// maps each kind to its HTTP status in a single place.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

func NotFound(message string) error {
	return &Error{kind: ErrNotFound, message: message}
}

func Conflict(message string) error {
	return &Error{kind: ErrConflict, message: message}
}

func Forbidden(message string) error {
	return &Error{kind: ErrForbidden, message: message}
}

func Unauthorized(message string) error {
	return &Error{kind: ErrUnauthorized, message: message}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
