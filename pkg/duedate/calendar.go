package duedate

import (
	"fmt"
	"strings"
	"time"
)

// maxDayOffset bounds day arithmetic. Anything beyond it is treated as a
// pathological offset and AddDays returns its input unchanged instead of
// producing a nonsense date.
const maxDayOffset = 36500

// Calendar supplies every calendar primitive the parser needs, so parsing
// never consults ambient process locale state and tests can pin a
// deterministic timezone and first weekday.
type Calendar struct {
	Location     *time.Location
	FirstWeekday time.Weekday
}

// NewCalendar creates a Calendar for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewCalendar(timezone string, firstWeekday time.Weekday) (Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Calendar{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return Calendar{Location: loc, FirstWeekday: firstWeekday}, nil
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// StartOfDay returns midnight at the start of the given day in the
// calendar's timezone.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location())
}

// AddDays shifts t by the given number of calendar days. Offsets outside
// [-maxDayOffset, maxDayOffset] leave t unchanged.
func (c Calendar) AddDays(t time.Time, days int) time.Time {
	if days < -maxDayOffset || days > maxDayOffset {
		return t
	}
	return t.AddDate(0, 0, days)
}

// SameDay reports whether a and b fall on the same calendar day.
func (c Calendar) SameDay(a, b time.Time) bool {
	a, b = a.In(c.location()), b.In(c.location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekdayOrdinal returns the 1-based position of t's weekday within the
// week, counted from the calendar's first weekday. With FirstWeekday =
// Monday, Monday is 1 and Sunday is 7.
func (c Calendar) WeekdayOrdinal(t time.Time) int {
	wd := t.In(c.location()).Weekday()
	return (int(wd)-int(c.FirstWeekday)+7)%7 + 1
}

// WeekdayNames returns the lower-case English weekday names in week order,
// starting from the calendar's first weekday.
func (c Calendar) WeekdayNames() [7]string {
	var names [7]string
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(c.FirstWeekday) + i) % 7)
		names[i] = strings.ToLower(wd.String())
	}
	return names
}

// ParseWeekday converts an English weekday name ("monday", "Tuesday", ...)
// to its time.Weekday. Used to read the first-weekday setting from config.
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()) == name {
			return wd, true
		}
	}
	return time.Sunday, false
}
