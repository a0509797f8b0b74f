package portfolio

import "errors"

var (
	// ErrNotFound means the store holds no profile.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidArgument marks a missing or malformed client input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreUnavailable wraps any failure of the store itself.
	ErrStoreUnavailable = errors.New("profile store unavailable")
	ErrEmailExists      = errors.New("email already exists")
	ErrWritesDisabled   = errors.New("profile writes are disabled")
)
