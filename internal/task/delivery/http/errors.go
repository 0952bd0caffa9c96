package http

import (
	"errors"

	"duedate-service/internal/task"
)

// Delivery-level request errors.
var (
	errInvalidBody          = errors.New("invalid request body")
	errInvalidReferenceTime = errors.New("reference_time must be RFC3339")
)

// mapError translates domain errors into client-facing ones. nil means the
// error is unknown and the caller should respond with an internal error.
func mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrNoTitles),
		errors.Is(err, task.ErrTooManyTitles):
		return err
	default:
		return nil
	}
}
