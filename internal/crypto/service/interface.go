// Package service implements the password-based encrypt-then-MAC scheme:
// PBKDF2-HMAC-SHA256 key derivation, AES-256-CBC with PKCS7 padding and an
// HMAC-SHA256 tag over ciphertext || IV.
package service

// Encryptor encrypts and decrypts opaque byte payloads.
type Encryptor interface {
	// Encrypt returns a self-contained blob for plaintext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt verifies and decrypts a blob produced by Encrypt.
	Decrypt(data []byte) ([]byte, error)
}

// KeyDeriver derives the encryption and authentication keys for one blob.
type KeyDeriver interface {
	// DeriveKeys returns two independent keys for password and salt. The same
	// inputs always yield the same keys.
	DeriveKeys(password, salt []byte) (encKey, authKey []byte)
}
