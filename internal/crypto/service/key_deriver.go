package service

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/encrypt/internal/crypto/domain"
)

// PBKDF2KeyDeriver derives keys with PBKDF2-HMAC-SHA256.
//
// A single 2*KeySize output is produced and split in half: the first half is
// the encryption key, the second the authentication key.
type PBKDF2KeyDeriver struct {
	iterations int
}

// NewPBKDF2KeyDeriver creates a key deriver using the scheme's iteration count.
func NewPBKDF2KeyDeriver() *PBKDF2KeyDeriver {
	return &PBKDF2KeyDeriver{iterations: cryptoDomain.PBKDF2Iterations}
}

// DeriveKeys implements KeyDeriver.
func (k *PBKDF2KeyDeriver) DeriveKeys(password, salt []byte) (encKey, authKey []byte) {
	key := pbkdf2.Key(password, salt, k.iterations, 2*cryptoDomain.KeySize, sha256.New)
	return key[:cryptoDomain.KeySize:cryptoDomain.KeySize], key[cryptoDomain.KeySize:]
}
