package credential

import (
	cryptoDomain "github.com/allisson/encrypt/internal/crypto/domain"
)

// PasswordReader reads passwords interactively.
type PasswordReader interface {
	ReadPassword(label string) ([]byte, error)
	ReadPasswordConfirm() ([]byte, error)
}

// Options selects the password sources for one command.
type Options struct {
	// Flag is the --password value.
	Flag string
	// Prompt asks on the terminal.
	Prompt bool
	// Confirm asks twice when prompting. Used when encrypting so a typo does
	// not produce an unrecoverable blob.
	Confirm bool
	// Env is the ENCRYPT_PASSWORD value.
	Env string
}

// Resolve returns the password from the first source that applies, in
// order: flag, prompt, environment. It returns an empty string when no
// source provides one. reader is only used for the prompt and may be nil
// otherwise.
func Resolve(opts Options, reader PasswordReader) (string, error) {
	if opts.Flag != "" {
		return opts.Flag, nil
	}

	if opts.Prompt {
		var (
			password []byte
			err      error
		)
		if opts.Confirm {
			password, err = reader.ReadPasswordConfirm()
		} else {
			password, err = reader.ReadPassword("Password: ")
		}
		if err != nil {
			return "", err
		}
		defer cryptoDomain.Zero(password)
		return string(password), nil
	}

	return opts.Env, nil
}
