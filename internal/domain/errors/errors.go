package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingDate carries the exact message surfaced to API clients.
	ErrMissingDate = errors.New("Date parameter is required")
)
