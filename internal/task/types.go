package task

import (
	"time"

	"duedate-service/internal/model"
)

// MaxBulkTitles caps the number of titles accepted by ExtractBulk.
const MaxBulkTitles = 100

// ExtractInput is the input for single-title extraction.
type ExtractInput struct {
	Title         string    // Natural language task title from the user
	ReferenceTime time.Time // Reference "now"; zero value means time.Now()
}

// ExtractOutput is the result of parsing one title. MatchStart/MatchEnd
// are byte offsets into Task.Title (the trimmed title that was parsed).
type ExtractOutput struct {
	Found      bool
	Task       model.Task
	MatchStart int
	MatchEnd   int
}

// ExtractBulkInput is the input for batch extraction.
type ExtractBulkInput struct {
	Titles        []string
	ReferenceTime time.Time
}

// ExtractBulkOutput is the result of batch extraction. Items preserves the
// order of the input titles.
type ExtractBulkOutput struct {
	Items      []ExtractOutput
	Count      int // Total titles processed
	FoundCount int // Titles that carried a due-date expression
}
