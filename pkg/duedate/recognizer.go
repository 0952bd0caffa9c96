package duedate

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Match is one candidate found by a Recognizer: a byte range into the
// scanned text plus the moment the expression resolves to.
type Match struct {
	Start  int
	End    int
	Text   string
	Moment time.Time
}

// Recognizer scans free-form text for date/time-like substrings, resolved
// relative to now. Matches are ordered by position of occurrence, not by
// confidence; an empty slice means nothing was recognized. Keeping this
// interface narrow lets the classification policy in Parser stay
// independent of the concrete backend.
type Recognizer interface {
	Detect(text string, now time.Time) []Match
}

// whenRecognizer backs Recognizer with olebedev/when, loaded with the
// English and common rule sets.
type whenRecognizer struct {
	w *when.Parser
}

// NewRecognizer creates the default production Recognizer.
func NewRecognizer() Recognizer {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &whenRecognizer{w: w}
}

func (r *whenRecognizer) Detect(text string, now time.Time) []Match {
	res, err := r.w.Parse(text, now)
	if err != nil || res == nil || res.Text == "" {
		return nil
	}
	return []Match{{
		Start:  res.Index,
		End:    res.Index + len(res.Text),
		Text:   res.Text,
		Moment: res.Time,
	}}
}
