// Package repoerr holds the repository sentinel errors in a leaf package
// so the domain layer can match on them without importing the repository
// contract (which imports the domain types). The repository package
// re-exports these values under their original names.
package repoerr

import "errors"

var (
	// ErrNotFound is returned when a requested activity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an email is already on the roster
	ErrDuplicate = errors.New("duplicate participant")

	// ErrNotOnRoster is returned when an email is absent from the roster
	ErrNotOnRoster = errors.New("participant not on roster")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
