package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestGenerateWeeks_CountAndContiguity(t *testing.T) {
	anchor := date(2025, time.August, 18) // Monday

	weeks := GenerateWeeks(anchor, 20)
	if len(weeks) != 20 {
		t.Fatalf("expected 20 weeks, got %d", len(weeks))
	}
	if !weeks[0].StartDate.Equal(anchor) {
		t.Errorf("expected first week to start at anchor, got %v", weeks[0].StartDate)
	}

	for i, w := range weeks {
		if !w.EndDate.Equal(w.StartDate.AddDate(0, 0, 6)) {
			t.Errorf("week %d is not 7 days long: %v..%v", i, w.StartDate, w.EndDate)
		}
		if i > 0 {
			prev := weeks[i-1]
			if !w.StartDate.Equal(prev.StartDate.AddDate(0, 0, 7)) {
				t.Errorf("week %d is not contiguous with week %d", i, i-1)
			}
		}
	}
}

func TestGenerateWeeks_ZeroCount(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.August, 18), 0)
	if len(weeks) != 0 {
		t.Fatalf("expected no weeks, got %d", len(weeks))
	}
}

func TestGenerateWeeks_UniqueIDsAcrossYearBoundary(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.December, 1), 10)

	seen := make(map[string]bool)
	for _, w := range weeks {
		if seen[w.ID] {
			t.Errorf("duplicate week id %q in generated window", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestWeekNumber_AugustScenario(t *testing.T) {
	// 2025-08-18 is the Monday of week 34 under the legacy numbering.
	if got := WeekNumber(date(2025, time.August, 18)); got != 34 {
		t.Fatalf("expected week 34, got %d", got)
	}
	if got := WeekID(34, 2025); got != "w-34-2025" {
		t.Fatalf("unexpected week id %q", got)
	}
}

func TestCurrentWeekStartAt(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"monday is its own week start", date(2025, time.August, 18), date(2025, time.August, 18)},
		{"midweek rolls back to monday", date(2025, time.August, 20), date(2025, time.August, 18)},
		{"sunday belongs to the preceding monday", date(2025, time.August, 24), date(2025, time.August, 18)},
		{"time of day is zeroed", time.Date(2025, time.August, 20, 15, 42, 7, 0, time.Local), date(2025, time.August, 18)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentWeekStartAt(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("CurrentWeekStartAt(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestCurrentWeekID(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.August, 18), 4)

	if got := CurrentWeekID(weeks, date(2025, time.August, 24)); got != "w-34-2025" {
		t.Errorf("expected sunday to resolve to w-34-2025, got %q", got)
	}
	if got := CurrentWeekID(weeks, date(2025, time.August, 25)); got != "w-35-2025" {
		t.Errorf("expected next monday to resolve to w-35-2025, got %q", got)
	}
	if got := CurrentWeekID(weeks, date(2026, time.March, 1)); got != "" {
		t.Errorf("expected date outside window to resolve to empty id, got %q", got)
	}
}
