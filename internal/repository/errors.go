package repository

import "errors"

var (
	// ErrMalformed marks a backing document that exists but does not match
	// its schema. It surfaces at load or reload time, never mid-request.
	ErrMalformed = errors.New("malformed document")

	// ErrEntryNotFound is returned when a lookup target is absent.
	ErrEntryNotFound = errors.New("entry not found")
)
