package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecaseMocks "github.com/allisson/encrypt/internal/crypto/usecase/mocks"
)

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunEncrypt(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	blob := []byte{0x00, 0x01, 0xfe, 0xff}

	t.Run("success-raw", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEncryptionUseCase{}
		mockUseCase.On("Encrypt", ctx, []byte("shoop di whoop")).Return(blob, nil).Once()

		var out bytes.Buffer
		err := RunEncrypt(ctx, mockUseCase, logger, IOTuple{
			Reader: strings.NewReader("shoop di whoop"),
			Writer: &out,
		}, false)

		require.NoError(t, err)
		assert.Equal(t, blob, out.Bytes())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("success-base64", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEncryptionUseCase{}
		mockUseCase.On("Encrypt", ctx, []byte("shoop di whoop")).Return(blob, nil).Once()

		var out bytes.Buffer
		err := RunEncrypt(ctx, mockUseCase, logger, IOTuple{
			Reader: strings.NewReader("shoop di whoop"),
			Writer: &out,
		}, true)

		require.NoError(t, err)
		assert.Equal(t, base64.StdEncoding.EncodeToString(blob)+"\n", out.String())
	})

	t.Run("read-error", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEncryptionUseCase{}

		err := RunEncrypt(ctx, mockUseCase, logger, IOTuple{
			Reader: iotest.ErrReader(errors.New("broken pipe")),
			Writer: &bytes.Buffer{},
		}, false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read plaintext")
		mockUseCase.AssertNotCalled(t, "Encrypt")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEncryptionUseCase{}
		expectedErr := errors.New("random source exhausted")
		mockUseCase.On("Encrypt", ctx, []byte("x")).Return(nil, expectedErr).Once()

		var out bytes.Buffer
		err := RunEncrypt(ctx, mockUseCase, logger, IOTuple{
			Reader: strings.NewReader("x"),
			Writer: &out,
		}, false)

		assert.ErrorIs(t, err, expectedErr)
		assert.Zero(t, out.Len())
	})

	t.Run("write-error", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEncryptionUseCase{}
		mockUseCase.On("Encrypt", ctx, []byte("x")).Return(blob, nil).Once()

		err := RunEncrypt(ctx, mockUseCase, logger, IOTuple{
			Reader: strings.NewReader("x"),
			Writer: failingWriter{},
		}, false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write blob")
	})
}
