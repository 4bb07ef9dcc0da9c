package domain

import (
	"crypto/aes"
	"crypto/sha256"
)

// Scheme parameters. Existing blobs only decrypt when every one of these
// values matches the producer, so none of them may change.
const (
	// CipherMethod names the block cipher and mode in OpenSSL notation.
	CipherMethod = "aes-256-cbc"

	// PBKDF2Iterations is the PBKDF2-HMAC-SHA256 iteration count.
	PBKDF2Iterations = 50000

	// SaltSize is the length of the random per-blob salt.
	SaltSize = 8

	// IVSize is the CBC initialization vector length.
	IVSize = aes.BlockSize

	// MACSize is the HMAC-SHA256 tag length.
	MACSize = sha256.Size

	// KeySize is the length of each derived key (encryption and authentication).
	KeySize = 16

	// AESKeySize is the AES-256 key length. Derived encryption keys are
	// right-padded with zero bytes to this length, as OpenSSL does.
	AESKeySize = 32

	// MinBlobSize is the smallest structurally valid blob: salt, IV and MAC
	// with an empty ciphertext.
	MinBlobSize = SaltSize + IVSize + MACSize
)

// Field offsets inside a blob.
const (
	saltOffset       = 0
	ivOffset         = saltOffset + SaltSize
	macOffset        = ivOffset + IVSize
	ciphertextOffset = macOffset + MACSize
)
