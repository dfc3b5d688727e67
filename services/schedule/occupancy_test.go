package schedule

import (
	"testing"
	"time"

	"viaduct/models"
)

func TestIntensityLoad(t *testing.T) {
	tests := []struct {
		intensity string
		want      int
	}{
		{models.IntensityEvery1, 40},
		{models.IntensityEvery2, 20},
		{models.IntensityEvery4, 10},
		{"something unexpected", 40}, // fail-open default
		{"", 40},
	}

	for _, tt := range tests {
		if got := IntensityLoad(tt.intensity); got != tt.want {
			t.Errorf("IntensityLoad(%q) = %d, want %d", tt.intensity, got, tt.want)
		}
	}
}

func TestNormalizeIntensity(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"every-1", models.IntensityEvery1},
		{"EVERY-2 (50%)", models.IntensityEvery2},
		{"prefer every-4 if possible", models.IntensityEvery4},
		{"weekly", "weekly"}, // unrecognized passes through
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeIntensity(tt.raw); got != tt.want {
			t.Errorf("NormalizeIntensity(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestComputeWeekValues_SingleWeekCampaign(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.August, 18), 20)

	values := ComputeWeekValues("2025-08-18", "2025-08-24", models.IntensityEvery1, weeks)
	if len(values) != 1 {
		t.Fatalf("expected exactly one week, got %v", values)
	}
	if values["w-34-2025"] != 40 {
		t.Fatalf("expected w-34-2025 -> 40, got %v", values)
	}
}

func TestComputeWeekValues_FlatLoadAcrossBoundaryWeeks(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.August, 18), 20)

	// Starts midweek and ends midweek; both boundary weeks still carry
	// the full flat load.
	values := ComputeWeekValues("2025-08-20", "2025-09-02", models.IntensityEvery2, weeks)
	want := []string{"w-34-2025", "w-35-2025", "w-36-2025"}
	if len(values) != len(want) {
		t.Fatalf("expected %d weeks, got %v", len(want), values)
	}
	for _, id := range want {
		if values[id] != 20 {
			t.Errorf("expected %s -> 20, got %d", id, values[id])
		}
	}
}

func TestComputeWeekValues_EmptyCases(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.August, 18), 20)

	if values := ComputeWeekValues("2024-01-01", "2024-01-31", models.IntensityEvery1, weeks); len(values) != 0 {
		t.Errorf("expected empty map for range before the window, got %v", values)
	}
	if values := ComputeWeekValues("", "2025-08-24", models.IntensityEvery1, weeks); len(values) != 0 {
		t.Errorf("expected empty map for missing start date, got %v", values)
	}
	if values := ComputeWeekValues("2025-08-18", "", models.IntensityEvery1, weeks); len(values) != 0 {
		t.Errorf("expected empty map for missing end date, got %v", values)
	}
}

func TestWeeksOverlapping_WeekContainingRange(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.August, 18), 4)

	// A two-day campaign inside a single week: neither week boundary
	// falls in the range, the week fully contains it.
	overlapping := WeeksOverlapping("2025-08-19", "2025-08-20", weeks)
	if len(overlapping) != 1 || overlapping[0].ID != "w-34-2025" {
		t.Fatalf("expected only w-34-2025, got %v", overlapping)
	}
}
