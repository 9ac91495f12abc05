package domain

import "errors"

var (
	// ErrAccountNotFound is returned when a tracked account is not found
	ErrAccountNotFound = errors.New("account not found")

	// ErrNoAPIKey is returned when a provider client is constructed without a key
	ErrNoAPIKey = errors.New("no API key provided")
)
