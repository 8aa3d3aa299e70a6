package repository

import "github.com/mergington/activities/internal/repository/repoerr"

// The sentinel values live in repoerr so packages imported by this one
// (the domain layer) can reference them without an import cycle. These
// aliases preserve the repository.Err* names and error identities.
var (
	// ErrNotFound is returned when a requested activity doesn't exist
	ErrNotFound = repoerr.ErrNotFound

	// ErrDuplicate is returned when an email is already on the roster
	ErrDuplicate = repoerr.ErrDuplicate

	// ErrNotOnRoster is returned when an email is absent from the roster
	ErrNotOnRoster = repoerr.ErrNotOnRoster

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = repoerr.ErrInvalidInput
)
