package service

import "errors"

var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login failures never reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an email that already has
	// an account (emails are compared lowercased).
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidToken covers absent, malformed, expired, and orphaned tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrNotFound = errors.New("not found")
)

// ValidationError marks missing or malformed input detected at the service
// boundary, before any side effect.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
