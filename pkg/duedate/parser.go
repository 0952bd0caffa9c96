// Package duedate extracts natural-language due-date expressions from task
// titles: given "lunch with Sam tomorrow at 3pm" it resolves the date (and
// clock time when one is present) and reports the exact substring that
// expressed it, so callers can strip the expression from the title.
//
// Extraction is two-staged. A generic recognizer (olebedev/when) runs first;
// when it finds nothing, a fixed table of relative phrases ("today",
// "tonight", "next week", ...) and a "next <weekday>" grammar are tried as a
// fallback. The fallback vocabulary itself always resolves through the
// fallback arithmetic, even though the recognizer knows most of it too.
// A miss is a normal outcome, not an error.
package duedate

import "time"

// Parser extracts due-date expressions from free-form text. It holds only
// immutable configuration and is safe for concurrent use.
type Parser struct {
	cal Calendar
	rec Recognizer
}

// Option customizes a Parser.
type Option func(*Parser)

// WithRecognizer swaps the recognizer backend. Tests use it to pin
// deterministic recognizer output.
func WithRecognizer(rec Recognizer) Option {
	return func(p *Parser) { p.rec = rec }
}

// NewParser creates a Parser bound to the given calendar.
func NewParser(cal Calendar, opts ...Option) *Parser {
	p := &Parser{cal: cal, rec: NewRecognizer()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Calendar returns the calendar the parser resolves against.
func (p *Parser) Calendar() Calendar {
	return p.cal
}

// Parse scans text for a date/time expression, resolved relative to now.
// The recognizer stage wins when it matches, except that a match covering
// exactly one of the fallback phrases is handed back so the fixed-phrase
// and weekday arithmetic applies; otherwise the phrase table is tried in
// declared order, then the "next <weekday>" grammar. ok is false when no
// expression was found — the common case for ordinary prose, and never an
// error.
func (p *Parser) Parse(text string, now time.Time) (Result, bool) {
	if text == "" {
		return Result{}, false
	}
	if res, ok := p.resolveRecognized(text, now); ok {
		return res, true
	}
	if res, ok := p.matchFixedPhrase(text, now); ok {
		return res, true
	}
	return p.matchNextWeekday(text, now)
}

// resolveRecognized classifies the recognizer's first match. Matches that
// are verbatim fallback vocabulary are rejected here so they resolve through
// the phrase table instead. A moment on the reference day that carries a
// clock component is treated as time-only:
// the date is re-anchored to the caller's reference day rather than trusting
// the recognizer's own "today", which may differ from the caller's.
func (p *Parser) resolveRecognized(text string, now time.Time) (Result, bool) {
	matches := p.rec.Detect(text, now)
	if len(matches) == 0 {
		return Result{}, false
	}

	m := matches[0]
	if m.Start < 0 || m.End > len(text) || m.Start >= m.End {
		return Result{}, false
	}
	if p.fallbackCovers(text[m.Start:m.End]) {
		return Result{}, false
	}

	hasClock := m.Moment.Hour() != 0 || m.Moment.Minute() != 0
	res := Result{
		MatchStart:  m.Start,
		MatchEnd:    m.End,
		MatchedText: text[m.Start:m.End],
	}

	if hasClock && p.cal.SameDay(m.Moment, now) {
		res.Date = p.cal.StartOfDay(now)
		res.Time = m.Moment
		res.HasTime = true
		return res, true
	}

	res.Date = p.cal.StartOfDay(m.Moment)
	if hasClock {
		res.Time = m.Moment
		res.HasTime = true
	}
	return res, true
}
