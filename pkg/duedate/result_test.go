package duedate_test

import (
	"strings"
	"testing"

	"duedate-service/pkg/duedate"
)

func TestCleanedTitle(t *testing.T) {
	tests := []struct {
		name     string
		original string
		start    int
		end      int
		want     string
	}{
		{
			name:     "Middle removal collapses the doubled space",
			original: "lunch with Sam tomorrow at noon",
			start:    15,
			end:      23,
			want:     "lunch with Sam at noon",
		},
		{
			name:     "Trailing removal trims the leftover space",
			original: "ship the release tomorrow",
			start:    17,
			end:      25,
			want:     "ship the release",
		},
		{
			name:     "Leading removal trims the leftover space",
			original: "tomorrow ship the release",
			start:    0,
			end:      8,
			want:     "ship the release",
		},
		{
			name:     "Whole text removed",
			original: "tomorrow",
			start:    0,
			end:      8,
			want:     "",
		},
		{
			name:     "Out-of-bounds range only trims",
			original: "  ship it  ",
			start:    4,
			end:      99,
			want:     "ship it",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := duedate.Result{
				MatchStart:  tt.start,
				MatchEnd:    tt.end,
				MatchedText: safeSlice(tt.original, tt.start, tt.end),
			}
			got := res.CleanedTitle(tt.original)
			if got != tt.want {
				t.Errorf("CleanedTitle = %q, want %q", got, tt.want)
			}
			if strings.Contains(got, "  ") {
				t.Errorf("CleanedTitle %q contains doubled spaces", got)
			}
			if got != strings.TrimSpace(got) {
				t.Errorf("CleanedTitle %q not trimmed", got)
			}
		})
	}
}

func safeSlice(s string, start, end int) string {
	if start < 0 || end > len(s) || start >= end {
		return ""
	}
	return s[start:end]
}
