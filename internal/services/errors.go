package services

import "errors"

// Failure taxonomy surfaced to the HTTP layer. Services wrap these with
// stage context; handlers match with errors.Is.
var (
	// Malformed or missing required fields beyond the defined defaulting rules.
	ErrInvalidInput = errors.New("invalid input")

	// The storage collaborator is unreachable or returned no usable rows.
	// Not retried internally; retry policy belongs to the caller.
	ErrDataUnavailable = errors.New("data unavailable")

	// A prediction was requested before any model was loaded or trained.
	// Must not occur after a successful startup.
	ErrModelNotReady = errors.New("model not ready")

	// A retrain was requested while another one is still running.
	ErrRetrainInProgress = errors.New("retrain already in progress")
)
