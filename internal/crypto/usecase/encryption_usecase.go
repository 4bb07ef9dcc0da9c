package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	cryptoService "github.com/allisson/encrypt/internal/crypto/service"
)

type encryptionUseCase struct {
	encryptor cryptoService.Encryptor
	logger    *slog.Logger
}

// NewEncryptionUseCase creates an EncryptionUseCase backed by encryptor.
func NewEncryptionUseCase(encryptor cryptoService.Encryptor, logger *slog.Logger) EncryptionUseCase {
	return &encryptionUseCase{
		encryptor: encryptor,
		logger:    logger,
	}
}

func (e *encryptionUseCase) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opID := uuid.Must(uuid.NewV7())
	blob, err := e.encryptor.Encrypt(plaintext)
	if err != nil {
		e.logger.WarnContext(ctx, "encrypt failed",
			slog.String("operation_id", opID.String()),
			slog.String("operation", "encrypt"),
			slog.Int("size", len(plaintext)),
			slog.Any("error", err),
		)
		return nil, err
	}

	e.logger.DebugContext(ctx, "encrypt succeeded",
		slog.String("operation_id", opID.String()),
		slog.String("operation", "encrypt"),
		slog.Int("size", len(plaintext)),
	)
	return blob, nil
}

func (e *encryptionUseCase) Decrypt(ctx context.Context, blob []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opID := uuid.Must(uuid.NewV7())
	plaintext, err := e.encryptor.Decrypt(blob)
	if err != nil {
		e.logger.WarnContext(ctx, "decrypt failed",
			slog.String("operation_id", opID.String()),
			slog.String("operation", "decrypt"),
			slog.Int("size", len(blob)),
			slog.Any("error", err),
		)
		return nil, err
	}

	e.logger.DebugContext(ctx, "decrypt succeeded",
		slog.String("operation_id", opID.String()),
		slog.String("operation", "decrypt"),
		slog.Int("size", len(blob)),
	)
	return plaintext, nil
}
