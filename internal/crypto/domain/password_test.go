package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	t.Run("copies input", func(t *testing.T) {
		secret := []byte("abc123")
		p := NewPassword(secret)

		secret[0] = 'X'

		got, err := p.Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte("abc123"), got)
	})

	t.Run("destroy wipes and blocks access", func(t *testing.T) {
		p := NewPassword([]byte("abc123"))
		buf, err := p.Bytes()
		require.NoError(t, err)

		p.Destroy()

		assert.Equal(t, make([]byte, 6), buf)

		got, err := p.Bytes()
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrEncryptorDestroyed)
	})

	t.Run("destroy is idempotent", func(t *testing.T) {
		p := NewPassword([]byte("abc123"))
		p.Destroy()
		assert.NotPanics(t, p.Destroy)
	})

	t.Run("redacted when formatted", func(t *testing.T) {
		p := NewPassword([]byte("abc123"))
		assert.Equal(t, "[REDACTED]", fmt.Sprintf("%s", p))
		assert.NotContains(t, fmt.Sprintf("%v", p), "abc123")
	})
}
