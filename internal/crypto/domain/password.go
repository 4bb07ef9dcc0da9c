package domain

import "sync/atomic"

// Password holds the long-term secret an encryptor derives its keys from.
// The bytes are copied on construction so later changes to the caller's
// slice have no effect, and Destroy wipes the copy.
type Password struct {
	secret    []byte
	destroyed atomic.Bool
}

// NewPassword copies secret into a new Password.
func NewPassword(secret []byte) *Password {
	buf := make([]byte, len(secret))
	copy(buf, secret)
	return &Password{secret: buf}
}

// Bytes returns the password bytes, or ErrEncryptorDestroyed after Destroy.
// Callers must not modify or retain the returned slice.
func (p *Password) Bytes() ([]byte, error) {
	if p.destroyed.Load() {
		return nil, ErrEncryptorDestroyed
	}
	return p.secret, nil
}

// Destroy zeroes the password. It is idempotent.
func (p *Password) Destroy() {
	if p.destroyed.Swap(true) {
		return
	}
	Zero(p.secret)
}

// String redacts the password so it never leaks through fmt or slog.
func (p *Password) String() string {
	return "[REDACTED]"
}
