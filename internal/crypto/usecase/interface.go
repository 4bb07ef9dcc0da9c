// Package usecase exposes the encryption scheme to callers that carry a
// context, such as the CLI. It adds operation IDs, structured logging and an
// optional metrics decorator around service.Encryptor.
package usecase

import "context"

// EncryptionUseCase encrypts and decrypts payloads on behalf of a caller.
//
// Both methods return ctx.Err() when the context is already done. The
// underlying crypto is not interruptible once started.
type EncryptionUseCase interface {
	// Encrypt returns a blob in the salt || IV || MAC || ciphertext layout.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)

	// Decrypt verifies and decrypts a blob.
	//
	// Returns:
	//   - domain.ErrInvalidData when the blob is too short
	//   - domain.ErrHMACMismatch when the blob was tampered with or the
	//     password is wrong
	//   - domain.ErrDecryptFailed when an authenticated blob does not decrypt
	Decrypt(ctx context.Context, blob []byte) ([]byte, error)
}
