package app

import apperrors "github.com/allisson/encrypt/internal/errors"

// ErrPasswordRequired is returned when neither --password nor
// ENCRYPT_PASSWORD provides a password.
var ErrPasswordRequired = apperrors.Wrap(apperrors.ErrInvalidInput, "password is required")
