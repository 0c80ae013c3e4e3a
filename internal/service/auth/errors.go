package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the password does not match
	// the stored admin credential.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrWeakPassword is returned when a new password does not satisfy
	// every strength criterion.
	ErrWeakPassword = errors.New("auth: password does not meet strength requirements")

	// ErrInvalidToken is returned when a token is missing, expired or
	// fails signature verification.
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("auth: internal error")
)
