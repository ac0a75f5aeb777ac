// apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned before any work starts when an input such as the row count is unusable.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrConfiguration is returned when the environment cannot serve the request,
	// e.g. the destination directory is missing or unwritable, or no database is configured.
	ErrConfiguration = errors.New("configuration error")
)

// Error carries a short machine-readable code alongside the wrapped cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parameter builds an ErrInvalidParameter error.
func Parameter(format string, args ...any) error {
	return &Error{
		Code:    "INVALID_PARAMETER",
		Message: fmt.Sprintf(format, args...),
		Err:     ErrInvalidParameter,
	}
}

// Configuration builds an ErrConfiguration error. cause may be nil.
func Configuration(message string, cause error) error {
	err := ErrConfiguration
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrConfiguration, cause)
	}
	return &Error{
		Code:    "CONFIGURATION",
		Message: message,
		Err:     err,
	}
}
