package model

import "errors"

var (
	// ErrNoteNotFound covers both "no such note" and "note owned by
	// someone else" so a caller cannot probe for other users' records.
	ErrNoteNotFound = errors.New("note not found")

	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned for both unknown usernames and
	// wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
