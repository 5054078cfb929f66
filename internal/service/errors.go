package service

import "errors"

// Validation errors for dashboard intents.
var (
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidPageSize  = errors.New("page size must be > 0")
	ErrInvalidSortField = errors.New("unknown sort field")
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrInvalidLimit     = errors.New("limit must be >= 0")

	ErrUnknownActivityType = errors.New("unknown activity type")
)

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
