package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoUseCase "github.com/allisson/encrypt/internal/crypto/usecase"
)

// RunEncrypt reads the whole plaintext from io.Reader and writes the blob to
// io.Writer. With encodeBase64 the blob is written as one line of standard
// base64, otherwise as raw bytes.
func RunEncrypt(
	ctx context.Context,
	useCase cryptoUseCase.EncryptionUseCase,
	logger *slog.Logger,
	ioTuple IOTuple,
	encodeBase64 bool,
) error {
	plaintext, err := io.ReadAll(ioTuple.Reader)
	if err != nil {
		return fmt.Errorf("failed to read plaintext: %w", err)
	}

	blob, err := useCase.Encrypt(ctx, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	if encodeBase64 {
		_, err = fmt.Fprintln(ioTuple.Writer, base64.StdEncoding.EncodeToString(blob))
	} else {
		_, err = ioTuple.Writer.Write(blob)
	}
	if err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}

	logger.Debug("payload encrypted", slog.Int("blob_size", len(blob)))
	return nil
}
