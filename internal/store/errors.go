package store

import "errors"

// Predefined errors for the store layer.
var (
	// ErrNotFound indicates that a requested record was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrEmailExists indicates an attempt to create a user with an email
	// that is already registered.
	ErrEmailExists = errors.New("email already registered")
)
