package usecase

import (
	"context"
	"time"

	"github.com/allisson/encrypt/internal/metrics"
)

// encryptionUseCaseWithMetrics decorates EncryptionUseCase with metrics instrumentation.
type encryptionUseCaseWithMetrics struct {
	next    EncryptionUseCase
	metrics metrics.BusinessMetrics
}

// NewEncryptionUseCaseWithMetrics wraps an EncryptionUseCase with metrics recording.
func NewEncryptionUseCaseWithMetrics(useCase EncryptionUseCase, m metrics.BusinessMetrics) EncryptionUseCase {
	return &encryptionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encrypt records metrics for encrypt operations.
func (e *encryptionUseCaseWithMetrics) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	start := time.Now()
	blob, err := e.next.Encrypt(ctx, plaintext)
	e.record(ctx, "encrypt", start, len(plaintext), err)
	return blob, err
}

// Decrypt records metrics for decrypt operations.
func (e *encryptionUseCaseWithMetrics) Decrypt(ctx context.Context, blob []byte) ([]byte, error) {
	start := time.Now()
	plaintext, err := e.next.Decrypt(ctx, blob)
	e.record(ctx, "decrypt", start, len(blob), err)
	return plaintext, err
}

func (e *encryptionUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	size int,
	err error,
) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	e.metrics.RecordOperation(ctx, "crypto", operation, status)
	e.metrics.RecordDuration(ctx, "crypto", operation, time.Since(start), status)
	e.metrics.RecordPayloadSize(ctx, "crypto", operation, size)
}
