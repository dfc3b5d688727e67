package models

// ScheduleSnapshot is everything the occupancy table renders: the
// rolling week window, every client with computed per-week loads, the
// per-week sums and the over-capacity flags. Recomputed from scratch
// whenever the client set or the current day changes.
type ScheduleSnapshot struct {
	Weeks         []Week         `json:"weeks"`
	Clients       []Client       `json:"clients"`
	WeekSums      map[string]int `json:"weekSums"`
	OverCapacity  []string       `json:"overCapacity"` // week ids with sum > capacity limit
	CurrentWeekID string         `json:"currentWeekId"`
	CapacityLimit int            `json:"capacityLimit"`
}
