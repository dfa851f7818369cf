package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionInvalid indicates a missing or unparsable session cookie.
	ErrSessionInvalid = errors.New("session invalid")
	// ErrDuplicate indicates a uniqueness conflict on insert.
	ErrDuplicate = errors.New("duplicate entry")
)
