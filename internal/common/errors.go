// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Failure categories. Every error a service returns wraps exactly one of
// these sentinels, so callers can classify failures with errors.Is without
// caring about the message text.
var (
	// ErrValidation marks missing or malformed required input.
	ErrValidation = errors.New("validation failed")
	// ErrPermission marks an actor lacking the required capability.
	ErrPermission = errors.New("permission denied")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrAuthentication marks bad credentials.
	ErrAuthentication = errors.New("authentication failed")
)

// Error is a user-facing failure. Every instance is recoverable: the
// triggering mutation was not applied and the actor can correct and retry.
type Error struct {
	kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the category sentinel for errors.Is.
func (e *Error) Unwrap() error { return e.kind }

// Validationf builds a validation error.
func Validationf(format string, args ...any) error {
	return &Error{kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// Permissionf builds a permission error.
func Permissionf(format string, args ...any) error {
	return &Error{kind: ErrPermission, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...any) error {
	return &Error{kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error.
func Conflictf(format string, args ...any) error {
	return &Error{kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// Authenticationf builds an authentication error.
func Authenticationf(format string, args ...any) error {
	return &Error{kind: ErrAuthentication, Message: fmt.Sprintf(format, args...)}
}
