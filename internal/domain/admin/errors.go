package admin

import (
	"storeops/internal/shared/errors"
)

// ErrAdminNotFound is returned by repositories when no record matches.
var ErrAdminNotFound = errors.NewNotFoundError("admin not found")

// DomainError represents an admin domain-specific error
type DomainError struct {
	*errors.AppError
}

// NewDomainError creates a new admin domain error
func NewDomainError(message string, details ...string) *DomainError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}

	return &DomainError{
		AppError: errors.NewValidationError(message, detail),
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.AppError.Error()
}

// Unwrap exposes the underlying AppError for errors.As chains.
func (e *DomainError) Unwrap() error {
	return e.AppError
}
