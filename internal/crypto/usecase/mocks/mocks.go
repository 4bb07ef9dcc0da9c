// Package mocks provides mock implementations for testing code that depends
// on the encryption service and use case.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEncryptor is a mock implementation of service.Encryptor for testing.
type MockEncryptor struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of Encryptor.
func (m *MockEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	args := m.Called(plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Decrypt mocks the Decrypt method of Encryptor.
func (m *MockEncryptor) Decrypt(data []byte) ([]byte, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockEncryptionUseCase is a mock implementation of EncryptionUseCase for testing.
type MockEncryptionUseCase struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of EncryptionUseCase.
func (m *MockEncryptionUseCase) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Decrypt mocks the Decrypt method of EncryptionUseCase.
func (m *MockEncryptionUseCase) Decrypt(ctx context.Context, blob []byte) ([]byte, error) {
	args := m.Called(ctx, blob)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
