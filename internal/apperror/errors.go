// Package apperror defines the sentinel errors shared across services and
// controllers. Services wrap these with context via fmt.Errorf and %w, and
// the HTTP layer maps them to status codes with errors.Is.
package apperror

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when an attempt operation is not
	// valid from the attempt's current status.
	ErrInvalidTransition = errors.New("invalid attempt transition")

	// ErrAttemptTerminal is returned for mutations against an attempt
	// that has already reached a terminal status.
	ErrAttemptTerminal = errors.New("attempt already finalized")

	// ErrAlreadySubmitted is returned when a student starts an attempt
	// for an exam they have already submitted.
	ErrAlreadySubmitted = errors.New("exam already submitted")

	// ErrDuplicateAttempt is returned when a student starts an attempt
	// for an exam with a prior terminal attempt that was not submitted.
	ErrDuplicateAttempt = errors.New("attempt already exists for exam")

	// ErrBadRequest is returned for malformed or semantically invalid input.
	ErrBadRequest = errors.New("bad request")

	// ErrScoringProvider is returned when the embedding provider cannot be
	// reached or returns an unusable payload.
	ErrScoringProvider = errors.New("scoring provider unavailable")
)
