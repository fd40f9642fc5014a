package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed request field.
// Never retried; maps to a 400 at the transport layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a reference to a resource that does not exist.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// UnprocessableError wraps a store-level failure during a write
// (constraint violation, connection loss). Maps to a 422.
type UnprocessableError struct {
	Op  string
	Err error
}

func (e *UnprocessableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UnprocessableError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsUnprocessable reports whether err is an UnprocessableError.
func IsUnprocessable(err error) bool {
	var ue *UnprocessableError
	return errors.As(err, &ue)
}
