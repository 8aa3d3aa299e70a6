package activity

import "errors"

var (
	// ErrActivityNotFound indicates the activity doesn't exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotRegistered indicates the email is not on the roster.
	ErrNotRegistered = errors.New("student is not registered for this activity")
	// ErrInvalidInput indicates a missing activity name or email.
	ErrInvalidInput = errors.New("invalid input")
)
