package usecase

import (
	"errors"

	"store-rating/pkg/utils"
)

// Error classes handlers translate into HTTP statuses. Services wrap them
// with endpoint-specific messages via the helpers below.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

type statusError struct {
	kind error
	msg  string
}

func (e *statusError) Error() string { return e.msg }
func (e *statusError) Unwrap() error { return e.kind }

func notFound(msg string) error {
	return &statusError{kind: ErrNotFound, msg: msg}
}

func duplicate(msg string) error {
	return &statusError{kind: ErrDuplicate, msg: msg}
}

func invalidCredentials(msg string) error {
	return &statusError{kind: ErrInvalidCredentials, msg: msg}
}

// ValidationError carries field-level failures back to the handler so the
// client sees which inputs to fix.
type ValidationError struct {
	Fields []utils.FieldError
}

func (e *ValidationError) Error() string { return "Validation failed" }

func validationFailed(fields []utils.FieldError) error {
	return &ValidationError{Fields: fields}
}

func fieldError(field, message string) error {
	return &ValidationError{Fields: []utils.FieldError{{Field: field, Message: message}}}
}
