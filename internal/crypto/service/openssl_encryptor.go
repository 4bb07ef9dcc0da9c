package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/encrypt/internal/crypto/domain"
)

// OpenSSLEncryptor implements Encryptor with the OpenSSL-compatible
// aes-256-cbc scheme.
//
// Every call draws a fresh salt and derives fresh keys, so the only state is
// the password. The instance is safe for concurrent use until Destroy.
//
// The derived encryption key is 16 bytes while the cipher is AES-256. OpenSSL
// right-pads short keys with zeros, so the AES key is encKey followed by 16
// zero bytes. Blobs written by the OpenSSL-based producer depend on this.
type OpenSSLEncryptor struct {
	password *cryptoDomain.Password
	kdf      KeyDeriver
	random   io.Reader
}

// NewOpenSSLEncryptor creates an encryptor for password. The password is
// copied; the caller may wipe its own slice afterwards.
func NewOpenSSLEncryptor(password []byte) *OpenSSLEncryptor {
	return &OpenSSLEncryptor{
		password: cryptoDomain.NewPassword(password),
		kdf:      NewPBKDF2KeyDeriver(),
		random:   rand.Reader,
	}
}

// Encrypt returns salt || IV || MAC || ciphertext for plaintext.
//
// The only possible error is a failing random source or a destroyed encryptor.
func (e *OpenSSLEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	password, err := e.password.Bytes()
	if err != nil {
		return nil, err
	}

	blob := &cryptoDomain.Blob{
		Salt: make([]byte, cryptoDomain.SaltSize),
		IV:   make([]byte, cryptoDomain.IVSize),
	}
	if _, err := io.ReadFull(e.random, blob.Salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	if _, err := io.ReadFull(e.random, blob.IV); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	encKey, authKey := e.kdf.DeriveKeys(password, blob.Salt)
	defer cryptoDomain.Zero(encKey)
	defer cryptoDomain.Zero(authKey)

	block, err := newBlockCipher(encKey)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	defer cryptoDomain.Zero(padded)

	blob.Ciphertext = make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, blob.IV).CryptBlocks(blob.Ciphertext, padded)
	blob.MAC = computeMAC(authKey, blob)

	return blob.Bytes(), nil
}

// Decrypt verifies and decrypts data.
//
// Errors, checked in this order:
//   - cryptoDomain.ErrInvalidData when data is shorter than MinBlobSize
//   - cryptoDomain.ErrHMACMismatch when the tag does not verify
//   - cryptoDomain.ErrDecryptFailed when the authenticated ciphertext is not
//     valid CBC output (misaligned length or bad padding)
//
// The tag is always verified before any decryption is attempted.
func (e *OpenSSLEncryptor) Decrypt(data []byte) ([]byte, error) {
	blob, err := cryptoDomain.ParseBlob(data)
	if err != nil {
		return nil, err
	}

	password, err := e.password.Bytes()
	if err != nil {
		return nil, err
	}

	encKey, authKey := e.kdf.DeriveKeys(password, blob.Salt)
	defer cryptoDomain.Zero(encKey)
	defer cryptoDomain.Zero(authKey)

	if !hmac.Equal(computeMAC(authKey, blob), blob.MAC) {
		return nil, cryptoDomain.ErrHMACMismatch
	}

	if len(blob.Ciphertext) == 0 || len(blob.Ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf(
			"%w: ciphertext length %d is not a multiple of the block size",
			cryptoDomain.ErrDecryptFailed,
			len(blob.Ciphertext),
		)
	}

	block, err := newBlockCipher(encKey)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(blob.Ciphertext))
	cipher.NewCBCDecrypter(block, blob.IV).CryptBlocks(plaintext, blob.Ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		cryptoDomain.Zero(plaintext)
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrDecryptFailed, err)
	}

	return unpadded, nil
}

// Destroy wipes the password. Subsequent calls fail with
// cryptoDomain.ErrEncryptorDestroyed. Do not call it while operations are in
// flight.
func (e *OpenSSLEncryptor) Destroy() {
	e.password.Destroy()
}

// newBlockCipher builds AES-256 from a derived key, zero-padding it to
// AESKeySize the way OpenSSL does.
func newBlockCipher(encKey []byte) (cipher.Block, error) {
	key := make([]byte, cryptoDomain.AESKeySize)
	copy(key, encKey)
	defer cryptoDomain.Zero(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	return block, nil
}

// computeMAC returns HMAC-SHA256(authKey, ciphertext || IV).
func computeMAC(authKey []byte, blob *cryptoDomain.Blob) []byte {
	mac := hmac.New(sha256.New, authKey)
	mac.Write(blob.Ciphertext)
	mac.Write(blob.IV)
	return mac.Sum(nil)
}
