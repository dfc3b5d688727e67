// Package schedule holds the occupancy core: week-window generation,
// intensity-to-load mapping and per-week aggregation. Everything here
// is pure; callers regenerate on every pass instead of caching.
package schedule

import (
	"fmt"
	"math"
	"time"

	"viaduct/models"
)

// DateLayout is the calendar-date wire format used throughout.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string to local midnight. Returns the
// zero time for empty or malformed input.
func ParseDate(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Midnight truncates t to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekNumber computes the week-of-year for a date.
//
// This is the legacy approximation, not strict ISO-8601: week number =
// ceil((day-of-year + weekday-of-Jan-1 offset) / 7) with Sunday-based
// weekdays. It can diverge from ISO around year boundaries; the ids it
// yields must stay stable against data produced by the old dashboard.
func WeekNumber(date time.Time) int {
	jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	pastDays := date.YearDay() - 1
	return int(math.Ceil(float64(pastDays+int(jan1.Weekday())+1) / 7))
}

// WeekID builds the stable week key from its number and year.
func WeekID(weekNumber, year int) string {
	return fmt.Sprintf("w-%d-%d", weekNumber, year)
}

// CurrentWeekStartAt returns the Monday of the week containing now,
// at local midnight. Sunday belongs to the week that started six days
// earlier.
func CurrentWeekStartAt(now time.Time) time.Time {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	return Midnight(now.AddDate(0, 0, -offset))
}

// CurrentWeekStart is CurrentWeekStartAt against the wall clock.
func CurrentWeekStart() time.Time {
	return CurrentWeekStartAt(time.Now())
}

// GenerateWeeks produces count contiguous 7-day weeks starting at
// anchorMonday. Deterministic and stateless; safe to call on every
// recomputation pass.
func GenerateWeeks(anchorMonday time.Time, count int) []models.Week {
	anchorMonday = Midnight(anchorMonday)
	weeks := make([]models.Week, 0, count)
	for i := 0; i < count; i++ {
		start := anchorMonday.AddDate(0, 0, i*7)
		end := start.AddDate(0, 0, 6)
		num := WeekNumber(start)
		weeks = append(weeks, models.Week{
			ID:         WeekID(num, start.Year()),
			WeekNumber: num,
			Year:       start.Year(),
			StartDate:  start,
			EndDate:    end,
			ShortLabel: fmt.Sprintf("W-%d", num),
		})
	}
	return weeks
}

// CurrentWeekID returns the id of the week containing now, or "" when
// now falls outside the window.
func CurrentWeekID(weeks []models.Week, now time.Time) string {
	for _, w := range weeks {
		if w.Contains(now) {
			return w.ID
		}
	}
	return ""
}
