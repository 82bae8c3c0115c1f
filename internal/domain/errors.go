package domain

import "errors"

var (
	// ErrNotFound is returned when a room id has no catalog entry.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is the validation failure for login/register:
	// malformed email, empty password, or (register) empty name.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRateLimited is returned when auth attempts arrive faster than the
	// configured budget allows.
	ErrRateLimited = errors.New("too many attempts")

	// ErrCorruptSession marks a persisted session blob that failed to parse.
	// The store discards the entry and falls back to anonymous.
	ErrCorruptSession = errors.New("corrupt session record")
)
