// Package service provides application-level services for authentication and task management.
package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/task-tracker-api/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrInvalidCredentials is returned by SignIn when the username is unknown
	// or the password does not match. The two cases are indistinguishable.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)

	// ErrMissingOwner is returned when a task operation is called without an
	// authenticated owner.
	ErrMissingOwner = fmt.Errorf("%w: no authenticated user", domain.ErrUnauthorized)
)

// ServiceError wraps an unexpected failure with the operation it interrupted.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// toValidationError turns a domain constructor failure into a field-level validation error.
func toValidationError(field string, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return domain.NewValidationError(field, err.Error(), err)
}
