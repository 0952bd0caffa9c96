package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle    = errors.New("task title is empty")
	ErrNoTitles      = errors.New("no task titles provided")
	ErrTooManyTitles = errors.New("too many task titles in one request")
)
