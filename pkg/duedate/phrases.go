package duedate

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// tonightHour is the clock time implied by "tonight".
const tonightHour = 20

// fixedPhrase is one entry of the fallback vocabulary.
type fixedPhrase struct {
	text      string
	days      int  // day offset from the reference day
	atHour    int  // 0 means no implied clock time
	endOfWeek bool // days is computed from the reference weekday instead
}

// fixedPhrases is scanned in declared order and the first phrase found in
// the text wins, even when another entry occurs earlier in the text. This
// table-order rule is long-standing observable behavior; it also means
// "day after tomorrow" can never win over plain "tomorrow". Do not reorder.
var fixedPhrases = []fixedPhrase{
	{text: "today", days: 0},
	{text: "tonight", days: 0, atHour: tonightHour},
	{text: "tomorrow", days: 1},
	{text: "day after tomorrow", days: 2},
	{text: "next week", days: 7},
	{text: "in a week", days: 7},
	{text: "end of week", endOfWeek: true},
}

// fallbackCovers reports whether the matched text is exactly one of the
// fallback vocabulary expressions. The generic recognizer knows most of
// them too but resolves them differently ("tonight" lands at 23:00 instead
// of 20:00, "next monday" said on a Monday lands one week early), so a
// recognizer match that is verbatim fallback vocabulary is handed back to
// the phrase table and the weekday grammar.
func (p *Parser) fallbackCovers(matched string) bool {
	matched = strings.ToLower(strings.TrimSpace(matched))
	for _, ph := range fixedPhrases {
		if matched == ph.text {
			return true
		}
	}
	for _, name := range p.cal.WeekdayNames() {
		if matched == "next "+name {
			return true
		}
	}
	return false
}

func (p *Parser) matchFixedPhrase(text string, now time.Time) (Result, bool) {
	for _, ph := range fixedPhrases {
		start, end, ok := indexFold(text, ph.text)
		if !ok {
			continue
		}

		days := ph.days
		if ph.endOfWeek {
			days = endOfWeekOffset(p.cal, now)
		}

		day := p.cal.StartOfDay(p.cal.AddDays(now, days))
		res := Result{
			Date:        day,
			MatchStart:  start,
			MatchEnd:    end,
			MatchedText: text[start:end],
		}
		if ph.atHour > 0 {
			res.Time = time.Date(day.Year(), day.Month(), day.Day(), ph.atHour, 0, 0, 0, p.cal.location())
			res.HasTime = true
		}
		return res, true
	}
	return Result{}, false
}

// endOfWeekOffset returns the day offset from now to the end of the week:
// 0 when now is already the last day of the week, otherwise 8 minus the
// weekday ordinal. The 8-minus rule is kept as-is for compatibility.
func endOfWeekOffset(cal Calendar, now time.Time) int {
	ord := cal.WeekdayOrdinal(now)
	if ord == 7 {
		return 0
	}
	return 8 - ord
}

// matchNextWeekday handles the "next <weekday>" grammar. Weekday names are
// tried in week order starting from the calendar's first weekday; the first
// name found wins regardless of where it sits in the text.
func (p *Parser) matchNextWeekday(text string, now time.Time) (Result, bool) {
	names := p.cal.WeekdayNames()
	current := p.cal.WeekdayOrdinal(now)

	for i, name := range names {
		start, end, ok := indexFold(text, "next "+name)
		if !ok {
			continue
		}

		target := i + 1
		days := target - current
		if days <= 0 {
			days += 7
		}
		// "next" always skips past the nearest upcoming occurrence into the
		// following week, so "next Monday" said on a Monday lands 14 days
		// out, not 7.
		days += 7

		day := p.cal.StartOfDay(p.cal.AddDays(now, days))
		return Result{
			Date:        day,
			MatchStart:  start,
			MatchEnd:    end,
			MatchedText: text[start:end],
		}, true
	}
	return Result{}, false
}

// indexFold finds the first case-insensitive occurrence of pattern in s and
// returns byte offsets into s. The scan walks s rune by rune, so the range
// stays valid even where lower-casing the text would change its byte length.
func indexFold(s, pattern string) (start, end int, ok bool) {
	if pattern == "" || len(pattern) > len(s) {
		return 0, 0, false
	}
	runes := []rune(pattern)
	for i := range s {
		j := i
		matched := true
		for _, pr := range runes {
			r, size := utf8.DecodeRuneInString(s[j:])
			if size == 0 || unicode.ToLower(r) != unicode.ToLower(pr) {
				matched = false
				break
			}
			j += size
		}
		if matched {
			return i, j, true
		}
	}
	return 0, 0, false
}
