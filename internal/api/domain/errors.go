package domain

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given email or id
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when a signup email already exists
	ErrEmailTaken = errors.New("email already registered")

	// ErrJobNotFound is returned when a job cannot be found in the database
	ErrJobNotFound = errors.New("job not found")

	// ErrApplicationNotFound is returned when an application cannot be found
	ErrApplicationNotFound = errors.New("application not found")

	// ErrAlreadyApplied is returned when a user applies twice to the same job
	ErrAlreadyApplied = errors.New("already applied to this job")
)
