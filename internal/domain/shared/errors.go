package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists   = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthenticated = NewDomainError("UNAUTHENTICATED", "No authenticated identity")
	ErrForbidden       = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrProfileMissing  = NewDomainError("PROFILE_MISSING", "Authenticated identity has no business profile")
)

// RemoteError wraps a failure from the remote store. The original cause is
// preserved for logging; callers treat any RemoteError as a failed round trip
// and leave local state untouched.
type RemoteError struct {
	Op    string // gateway operation, e.g. "list clients"
	Cause error
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote store failure during %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause
func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// NewRemoteError wraps err as a RemoteError for the given operation
func NewRemoteError(op string, err error) *RemoteError {
	return &RemoteError{Op: op, Cause: err}
}

// IsRemote reports whether err is (or wraps) a RemoteError
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsNotFound reports whether err is the not-found domain error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsProfileMissing reports whether err is the missing-profile domain error.
// Callers recover from it by falling back to a default profile.
func IsProfileMissing(err error) bool {
	return errors.Is(err, ErrProfileMissing)
}
