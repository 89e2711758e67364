package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailTaken signals a registration against an email that already
	// has an account. The authoritative source is the store's unique
	// constraint, not the advisory pre-check.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials covers both unknown email and wrong password
	// so the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks malformed, missing, or out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
