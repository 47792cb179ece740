package identity

import "errors"

var (
	// ErrInvalidCredentials is returned by Login in verifying mode for an unknown
	// email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailAlreadyRegistered is returned by Signup in verifying mode when the
	// email belongs to a directory account.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrSessionUnavailable wraps failures to commit the user into the session.
	ErrSessionUnavailable = errors.New("session unavailable")
)
