// Package domain defines the blob layout, scheme constants and errors of the
// password-based encryption scheme.
package domain

import (
	"github.com/allisson/encrypt/internal/errors"
)

// Encryption error definitions.
//
// Structural problems wrap errors.ErrInvalidInput. Authentication and
// decryption failures wrap errors.ErrUntrusted and are distinguishable from
// each other.
var (
	// ErrInvalidData indicates the blob is too short to hold salt, IV and MAC.
	ErrInvalidData = errors.Wrap(errors.ErrInvalidInput, "data is not valid for decryption")

	// ErrEncryptorDestroyed indicates the encryptor's password was already wiped.
	ErrEncryptorDestroyed = errors.Wrap(errors.ErrInvalidInput, "encryptor has been destroyed")

	// ErrHMACMismatch indicates the stored tag does not match the recomputed one.
	// The blob was tampered with or produced under a different password.
	ErrHMACMismatch = errors.Wrap(errors.ErrUntrusted, "HMAC failed to match")

	// ErrDecryptFailed indicates the cipher rejected an authenticated ciphertext,
	// typically because of invalid padding or a misaligned length.
	ErrDecryptFailed = errors.Wrap(errors.ErrUntrusted, "failed to decrypt data")
)
