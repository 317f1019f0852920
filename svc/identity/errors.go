package identity

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotConfirmed is returned when logging in before confirming the address.
	ErrEmailNotConfirmed = errors.New("email address is not confirmed")

	// ErrAccountLocked is returned when logging into a locked account.
	ErrAccountLocked = errors.New("account is locked")

	// ErrUserNotFound is returned when no account matches the identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when the email address is already registered.
	ErrEmailTaken = errors.New("email address is already taken")

	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrUserHasDependents is returned when deleting a user that still owns
	// tasks, comments, projects, or memberships.
	ErrUserHasDependents = errors.New("user has dependent records")

	// ErrInvalidToken is returned for confirmation or email-change tokens
	// that fail validation.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrSameEmail is returned when requesting a change to the current address.
	ErrSameEmail = errors.New("new email matches the current address")
)
