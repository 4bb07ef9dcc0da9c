package credential

import (
	"crypto/subtle"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	cryptoDomain "github.com/allisson/encrypt/internal/crypto/domain"
)

// Prompter reads passwords from a terminal without echo. Stdin carries the
// payload, so the prompt talks to the controlling terminal instead.
type Prompter struct {
	fd           int
	out          io.Writer
	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

// NewPrompter creates a Prompter on tty, usually /dev/tty.
func NewPrompter(tty *os.File) *Prompter {
	return &Prompter{
		fd:           int(tty.Fd()),
		out:          tty,
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
	}
}

// ReadPassword prints label and reads one password.
func (p *Prompter) ReadPassword(label string) ([]byte, error) {
	if !p.isTerminal(p.fd) {
		return nil, ErrNoTerminal
	}

	_, _ = fmt.Fprint(p.out, label)
	password, err := p.readPassword(p.fd)
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// ReadPasswordConfirm reads the password twice and fails unless both entries match.
func (p *Prompter) ReadPasswordConfirm() ([]byte, error) {
	first, err := p.ReadPassword("Enter password: ")
	if err != nil {
		return nil, err
	}

	second, err := p.ReadPassword("Confirm password: ")
	if err != nil {
		cryptoDomain.Zero(first)
		return nil, err
	}
	defer cryptoDomain.Zero(second)

	if subtle.ConstantTimeCompare(first, second) != 1 {
		cryptoDomain.Zero(first)
		return nil, ErrPasswordMismatch
	}
	return first, nil
}
