// Package common defines shared constants and sentinel errors used across
// Todokeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration: the username is already taken.
	ErrAlreadyExists = errors.New("already exists")

	// Malformed input (empty title, bad date or time format, unknown priority).
	ErrValidation = errors.New("validation error")

	// Login failed. Deliberately covers both unknown username and wrong
	// password so callers cannot tell which one it was.
	ErrUnauthorized = errors.New("unauthorized")
)
