// Package credential resolves the encryption password from the sources the
// CLI supports: an explicit flag, an interactive terminal prompt and the
// ENCRYPT_PASSWORD environment variable.
package credential

import (
	apperrors "github.com/allisson/encrypt/internal/errors"
)

var (
	// ErrNoTerminal indicates a prompt was requested without an interactive terminal.
	ErrNoTerminal = apperrors.Wrap(apperrors.ErrInvalidInput, "password prompt requires a terminal")

	// ErrPasswordMismatch indicates the confirmation did not match the first entry.
	ErrPasswordMismatch = apperrors.Wrap(apperrors.ErrInvalidInput, "passwords do not match")
)
