// Package usecase implements the business logic for the jobs feature.
package usecase

import "errors"

var (
	// ErrValidation is returned when a job payload is missing or malformed.
	// It is always wrapped with a detail message describing the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrJobNotFound is returned when a job cannot be found by ID.
	ErrJobNotFound = errors.New("job not found")
)
