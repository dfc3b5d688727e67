package models

import "time"

// Week describes one calendar week column of the occupancy table.
// Weeks are derived on every computation pass from the current-week
// anchor and are never persisted.
type Week struct {
	ID         string    `json:"id"` // "w-<weekNumber>-<year>"
	WeekNumber int       `json:"weekNumber"`
	Year       int       `json:"year"`
	StartDate  time.Time `json:"startDate"` // Monday, midnight local
	EndDate    time.Time `json:"endDate"`   // Sunday (StartDate + 6 days)
	ShortLabel string    `json:"shortLabel"`
}

// Contains reports whether t falls inside the week's [start, end] span,
// end-of-Sunday inclusive.
func (w Week) Contains(t time.Time) bool {
	end := w.EndDate.AddDate(0, 0, 1)
	return !t.Before(w.StartDate) && t.Before(end)
}
