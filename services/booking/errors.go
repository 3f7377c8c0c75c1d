package booking

import "fmt"

// ValidationError reports malformed or out-of-policy input. Callers recover
// by correcting the input; nothing is retried automatically.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// ConflictError reports that the requested slot was no longer available at
// write time. Callers must re-fetch availability and re-select.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{
		Code:    "conflictError",
		Message: msg,
	}
}

// NotFoundError reports a missing trainer or booking on a write path. Read
// paths return empty results instead so availability queries stay total.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{
		Code:    "notFoundError",
		Message: msg,
	}
}
