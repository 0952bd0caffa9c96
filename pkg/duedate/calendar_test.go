package duedate_test

import (
	"testing"
	"time"

	"duedate-service/pkg/duedate"
)

func TestNewCalendar(t *testing.T) {
	cal, err := duedate.NewCalendar("Asia/Ho_Chi_Minh", time.Monday)
	if err != nil {
		t.Fatalf("unexpected error creating valid calendar: %v", err)
	}
	if cal.FirstWeekday != time.Monday {
		t.Errorf("FirstWeekday = %v, want Monday", cal.FirstWeekday)
	}

	if _, err = duedate.NewCalendar("Invalid/Timezone", time.Monday); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestWeekdayOrdinal(t *testing.T) {
	wednesday := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		first time.Weekday
		day   time.Time
		want  int
	}{
		{"Wednesday in Monday-first week", time.Monday, wednesday, 3},
		{"Sunday in Monday-first week", time.Monday, sunday, 7},
		{"Wednesday in Sunday-first week", time.Sunday, wednesday, 4},
		{"Sunday in Sunday-first week", time.Sunday, sunday, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := duedate.Calendar{Location: time.UTC, FirstWeekday: tt.first}
			if got := cal.WeekdayOrdinal(tt.day); got != tt.want {
				t.Errorf("WeekdayOrdinal = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekdayNames(t *testing.T) {
	cal := duedate.Calendar{Location: time.UTC, FirstWeekday: time.Monday}
	names := cal.WeekdayNames()
	if names[0] != "monday" || names[6] != "sunday" {
		t.Errorf("unexpected Monday-first order: %v", names)
	}

	cal.FirstWeekday = time.Sunday
	names = cal.WeekdayNames()
	if names[0] != "sunday" || names[6] != "saturday" {
		t.Errorf("unexpected Sunday-first order: %v", names)
	}
}

func TestSameDay(t *testing.T) {
	cal := duedate.Calendar{Location: time.UTC, FirstWeekday: time.Monday}
	morning := time.Date(2024, 5, 1, 0, 5, 0, 0, time.UTC)
	night := time.Date(2024, 5, 1, 23, 55, 0, 0, time.UTC)
	nextDay := time.Date(2024, 5, 2, 0, 5, 0, 0, time.UTC)

	if !cal.SameDay(morning, night) {
		t.Errorf("expected %v and %v on the same day", morning, night)
	}
	if cal.SameDay(night, nextDay) {
		t.Errorf("expected %v and %v on different days", night, nextDay)
	}
}

func TestAddDaysPathologicalOffset(t *testing.T) {
	cal := duedate.Calendar{Location: time.UTC, FirstWeekday: time.Monday}
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	if got := cal.AddDays(base, 14); !got.Equal(base.AddDate(0, 0, 14)) {
		t.Errorf("AddDays(14) = %v", got)
	}
	// Out-of-bounds offsets degrade to the input instead of overflowing.
	if got := cal.AddDays(base, 1<<40); !got.Equal(base) {
		t.Errorf("AddDays(huge) = %v, want input unchanged", got)
	}
	if got := cal.AddDays(base, -(1 << 40)); !got.Equal(base) {
		t.Errorf("AddDays(-huge) = %v, want input unchanged", got)
	}
}

func TestParseWeekday(t *testing.T) {
	if wd, ok := duedate.ParseWeekday(" Monday "); !ok || wd != time.Monday {
		t.Errorf("ParseWeekday(Monday) = %v, %v", wd, ok)
	}
	if wd, ok := duedate.ParseWeekday("sunday"); !ok || wd != time.Sunday {
		t.Errorf("ParseWeekday(sunday) = %v, %v", wd, ok)
	}
	if _, ok := duedate.ParseWeekday("funday"); ok {
		t.Errorf("expected ParseWeekday(funday) to fail")
	}
}
