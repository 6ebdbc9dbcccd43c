// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoDriverAvailable  = errors.New("no driver available")
	ErrInvalidTransition  = errors.New("ride is not in a state that allows this transition")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("missing or invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrRideNotFound       = errors.New("ride not found")
)

// IsError reports whether err matches the target sentinel, unwrapping as needed.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
