package model

import "time"

// Environment names used across the service.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Task represents a task title after due-date extraction.
type Task struct {
	Title        string    // Raw title as typed by the user
	CleanedTitle string    // Title with the date expression stripped
	DueDate      time.Time // Resolved due day (midnight in the reference calendar)
	DueTime      time.Time // Clock time, meaningful only when HasDueTime
	HasDueTime   bool
	MatchedText  string // The substring that expressed the due date
}
