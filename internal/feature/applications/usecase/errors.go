// Package usecase implements the business logic for the applications feature.
package usecase

import "errors"

var (
	// ErrValidation is returned when an application payload is malformed,
	// including an unknown status on an admin update.
	ErrValidation = errors.New("validation failed")

	// ErrJobNotFound is returned when the target job does not exist or is
	// no longer accepting applications.
	ErrJobNotFound = errors.New("job not found")

	// ErrAlreadyApplied is returned when the user already has an
	// application for the job. The message is part of the API contract.
	ErrAlreadyApplied = errors.New("you have already applied to this job")

	// ErrApplicationNotFound is returned when an application cannot be found by ID.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrAdminCannotApply is returned when the seeded administrator tries
	// to submit an application.
	ErrAdminCannotApply = errors.New("administrators cannot apply to jobs")
)
