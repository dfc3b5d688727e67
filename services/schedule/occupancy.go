package schedule

import (
	"strings"
	"time"

	"viaduct/models"
)

// DefaultLoad is the per-week load assumed for unrecognized intensity
// values. Fail-open: an unknown category books the full slot rather
// than silently contributing nothing.
const DefaultLoad = 40

// IntensityLoad maps a categorical intensity to its flat per-week load.
func IntensityLoad(intensity string) int {
	switch intensity {
	case models.IntensityEvery1:
		return 40
	case models.IntensityEvery2:
		return 20
	case models.IntensityEvery4:
		return 10
	default:
		return DefaultLoad
	}
}

// NormalizeIntensity snaps free-text intensity input to the nearest
// recognized category by token match. Unrecognized values pass through
// unchanged.
func NormalizeIntensity(raw string) string {
	v := strings.ToLower(raw)
	switch {
	case strings.Contains(v, "every-1"):
		return models.IntensityEvery1
	case strings.Contains(v, "every-2"):
		return models.IntensityEvery2
	case strings.Contains(v, "every-4"):
		return models.IntensityEvery4
	default:
		return raw
	}
}

// WeeksOverlapping returns the subsequence of allWeeks touching the
// client's [start, end] range: week start inside the range, week end
// inside the range, or the week spanning the whole range. Partially
// covered boundary weeks count in full.
func WeeksOverlapping(clientStart, clientEnd string, allWeeks []models.Week) []models.Week {
	start := ParseDate(clientStart)
	end := ParseDate(clientEnd)
	if start.IsZero() || end.IsZero() {
		return nil
	}

	var overlapping []models.Week
	for _, w := range allWeeks {
		if within(w.StartDate, start, end) || within(w.EndDate, start, end) ||
			(!w.StartDate.After(start) && !w.EndDate.Before(end)) {
			overlapping = append(overlapping, w)
		}
	}
	return overlapping
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// ComputeWeekValues maps every week overlapping the client's range to
// the intensity-derived flat load. Weeks outside the range are absent
// (consumers treat missing as zero). The model does not taper load at
// partially covered boundary weeks.
func ComputeWeekValues(clientStart, clientEnd, intensity string, allWeeks []models.Week) map[string]int {
	values := make(map[string]int)
	weeks := WeeksOverlapping(clientStart, clientEnd, allWeeks)
	if len(weeks) == 0 {
		return values
	}

	load := IntensityLoad(intensity)
	for _, w := range weeks {
		values[w.ID] = load
	}
	return values
}
