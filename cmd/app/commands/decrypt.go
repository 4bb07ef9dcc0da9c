package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoUseCase "github.com/allisson/encrypt/internal/crypto/usecase"
	apperrors "github.com/allisson/encrypt/internal/errors"
)

// RunDecrypt reads a blob from io.Reader and writes the plaintext to
// io.Writer. With decodeBase64 the input is standard base64; surrounding
// whitespace is ignored.
func RunDecrypt(
	ctx context.Context,
	useCase cryptoUseCase.EncryptionUseCase,
	logger *slog.Logger,
	ioTuple IOTuple,
	decodeBase64 bool,
) error {
	input, err := io.ReadAll(ioTuple.Reader)
	if err != nil {
		return fmt.Errorf("failed to read blob: %w", err)
	}

	blob := input
	if decodeBase64 {
		trimmed := bytes.TrimSpace(input)
		blob = make([]byte, base64.StdEncoding.DecodedLen(len(trimmed)))
		n, err := base64.StdEncoding.Decode(blob, trimmed)
		if err != nil {
			return apperrors.Wrapf(apperrors.ErrInvalidInput, "blob is not valid base64: %v", err)
		}
		blob = blob[:n]
	}

	plaintext, err := useCase.Decrypt(ctx, blob)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	if _, err := ioTuple.Writer.Write(plaintext); err != nil {
		return fmt.Errorf("failed to write plaintext: %w", err)
	}

	logger.Debug("payload decrypted", slog.Int("plaintext_size", len(plaintext)))
	return nil
}
