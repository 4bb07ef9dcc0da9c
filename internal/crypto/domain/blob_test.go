package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/encrypt/internal/errors"
)

func sequentialBytes(n int, start byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

func TestParseBlob(t *testing.T) {
	salt := sequentialBytes(SaltSize, 0x00)
	iv := sequentialBytes(IVSize, 0x10)
	mac := sequentialBytes(MACSize, 0x40)
	ciphertext := sequentialBytes(32, 0x80)

	raw := make([]byte, 0, MinBlobSize+len(ciphertext))
	raw = append(raw, salt...)
	raw = append(raw, iv...)
	raw = append(raw, mac...)
	raw = append(raw, ciphertext...)

	t.Run("parse fields by offset", func(t *testing.T) {
		blob, err := ParseBlob(raw)
		require.NoError(t, err)

		assert.Equal(t, salt, blob.Salt)
		assert.Equal(t, iv, blob.IV)
		assert.Equal(t, mac, blob.MAC)
		assert.Equal(t, ciphertext, blob.Ciphertext)
	})

	t.Run("minimum size has empty ciphertext", func(t *testing.T) {
		blob, err := ParseBlob(raw[:MinBlobSize])
		require.NoError(t, err)
		assert.Empty(t, blob.Ciphertext)
	})

	t.Run("too short", func(t *testing.T) {
		for _, n := range []int{0, 1, SaltSize, SaltSize + IVSize, MinBlobSize - 1} {
			blob, err := ParseBlob(raw[:n])
			assert.Nil(t, blob)
			assert.ErrorIs(t, err, ErrInvalidData)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		}
	})

	t.Run("literal eight byte input", func(t *testing.T) {
		_, err := ParseBlob([]byte("meugghhh"))
		assert.ErrorIs(t, err, ErrInvalidData)
		assert.Contains(t, err.Error(), "data is not valid for decryption")
	})
}

func TestBlob_Bytes(t *testing.T) {
	raw := sequentialBytes(MinBlobSize+16, 0x01)

	blob, err := ParseBlob(raw)
	require.NoError(t, err)

	out := blob.Bytes()
	assert.Equal(t, raw, out)

	// Serialization must not alias the parsed input.
	out[0] ^= 0xff
	assert.Equal(t, byte(0x01), raw[0])
}

func TestMinBlobSize(t *testing.T) {
	assert.Equal(t, 56, MinBlobSize)
	assert.Equal(t, 24, macOffset)
	assert.Equal(t, 56, ciphertextOffset)
}
