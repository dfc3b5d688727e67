package schedule

import "viaduct/models"

// SumPerWeek totals the load contributed to each week by every client
// except Cancelled ones. Clients are expected to carry computed Weeks
// maps; missing entries contribute zero. Order-independent.
func SumPerWeek(clients []models.Client, allWeeks []models.Week) map[string]int {
	sums := make(map[string]int, len(allWeeks))
	for _, w := range allWeeks {
		total := 0
		for _, c := range clients {
			if c.Status == models.StatusCancelled {
				continue
			}
			total += c.Weeks[w.ID]
		}
		sums[w.ID] = total
	}
	return sums
}

// OverCapacityWeeks lists, in window order, the ids of weeks whose sum
// exceeds the capacity limit. Overflow is flagged, never prevented.
func OverCapacityWeeks(sums map[string]int, allWeeks []models.Week, limit int) []string {
	var over []string
	for _, w := range allWeeks {
		if sums[w.ID] > limit {
			over = append(over, w.ID)
		}
	}
	return over
}
