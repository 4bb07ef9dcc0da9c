// Package errors provides the base error kinds shared by every layer. Domain
// packages wrap these kinds so callers can classify a failure with errors.Is
// without depending on the domain sentinel itself.
package errors

import (
	"errors"
	"fmt"
)

// Base error kinds.
var (
	// ErrInvalidInput indicates the input is structurally invalid and was rejected
	// before any cryptographic work took place.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUntrusted indicates the input failed authentication or could not be
	// recovered. The data must not be trusted.
	ErrUntrusted = errors.New("untrusted data")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
