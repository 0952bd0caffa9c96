package duedate

import (
	"strings"
	"time"
)

// Result is a single extracted date/time expression.
type Result struct {
	// Date is the resolved calendar day, at midnight in the parser's
	// calendar timezone.
	Date time.Time

	// Time is the resolved clock time. Meaningful only when HasTime is set;
	// a bare date like "tomorrow" carries no time of day.
	Time    time.Time
	HasTime bool

	// MatchStart and MatchEnd delimit the half-open byte range
	// [MatchStart, MatchEnd) of the expression within the parsed text.
	MatchStart int
	MatchEnd   int

	// MatchedText is the exact substring the range covers, kept for display.
	MatchedText string
}

// CleanedTitle returns original with the matched range stripped out, runs of
// doubled spaces collapsed, and leading/trailing whitespace trimmed. Callers
// use it to turn "lunch with Sam tomorrow" into "lunch with Sam" once the
// due date has been captured. original must be the same text the result was
// parsed from; an out-of-bounds range leaves the text intact apart from
// trimming.
func (r Result) CleanedTitle(original string) string {
	if r.MatchStart < 0 || r.MatchEnd > len(original) || r.MatchStart >= r.MatchEnd {
		return strings.TrimSpace(original)
	}
	cleaned := original[:r.MatchStart] + original[r.MatchEnd:]
	for strings.Contains(cleaned, "  ") {
		cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	}
	return strings.TrimSpace(cleaned)
}
