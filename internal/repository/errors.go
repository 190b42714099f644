package repository

import "errors"

var (
	// ErrTaskNotFound is returned when a task id does not exist in the store.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound is returned when a user id does not exist in the store.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating a user with a username that
	// already exists.
	ErrUsernameTaken = errors.New("username already taken")
)
