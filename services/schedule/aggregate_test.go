package schedule

import (
	"testing"
	"time"

	"viaduct/models"
)

func bookedClient(status string, weeks map[string]int) models.Client {
	return models.Client{
		ID:        "c-" + status,
		Name:      "client",
		Status:    status,
		StartDate: "2025-08-18",
		EndDate:   "2025-08-24",
		Intensity: models.IntensityEvery1,
		Weeks:     weeks,
	}
}

func TestSumPerWeek_ExcludesCancelled(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.August, 18), 2)
	load := map[string]int{"w-34-2025": 40}

	clients := []models.Client{
		bookedClient(models.StatusConfirmed, load),
		bookedClient(models.StatusCancelled, load),
	}

	sums := SumPerWeek(clients, weeks)
	if sums["w-34-2025"] != 40 {
		t.Fatalf("cancelled client must not contribute: expected 40, got %d", sums["w-34-2025"])
	}
}

func TestSumPerWeek_AddsActiveClients(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.August, 18), 2)
	load := map[string]int{"w-34-2025": 40}

	clients := []models.Client{
		bookedClient(models.StatusConfirmed, load),
		bookedClient(models.StatusReserved, load),
	}

	sums := SumPerWeek(clients, weeks)
	if sums["w-34-2025"] != 80 {
		t.Fatalf("expected 80, got %d", sums["w-34-2025"])
	}
	if sums["w-35-2025"] != 0 {
		t.Fatalf("weeks without bookings must sum to zero, got %d", sums["w-35-2025"])
	}
}

func TestOverCapacityWeeks(t *testing.T) {
	weeks := GenerateWeeks(date(2025, time.August, 18), 3)
	sums := map[string]int{
		"w-34-2025": 280, // over
		"w-35-2025": 240, // exactly at the limit is fine
		"w-36-2025": 0,
	}

	over := OverCapacityWeeks(sums, weeks, 240)
	if len(over) != 1 || over[0] != "w-34-2025" {
		t.Fatalf("expected only w-34-2025 over capacity, got %v", over)
	}
}
