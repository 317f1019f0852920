package tracker

import "errors"

var (
	// ErrProjectNotFound is returned when no project matches the identifier.
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound is returned when no task matches the identifier.
	ErrTaskNotFound = errors.New("task not found")

	// ErrCommentNotFound is returned when no comment matches the identifier.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrHasDependents is returned when deleting a record that dependent
	// rows still reference.
	ErrHasDependents = errors.New("record has dependent records")

	// ErrInvalidReference is returned when a create or update references a
	// user, project, or task that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrAlreadyMember is returned when adding a user who is already a
	// project member.
	ErrAlreadyMember = errors.New("user is already a project member")

	// ErrNotMember is returned when removing a user who is not a member.
	ErrNotMember = errors.New("user is not a project member")
)
