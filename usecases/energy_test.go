package usecases

import (
	"errors"
	"testing"
	"time"

	"smartcampus-server/entities"
	"smartcampus-server/repositories"
)

func newEnergyUseCase(t *testing.T) *EnergyUseCase {
	t.Helper()
	return NewEnergyUseCase(repositories.NewEnergyPgRepository(openTestDB(t)))
}

func TestListReadingsPagination(t *testing.T) {
	uc := newEnergyUseCase(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		reading := entities.EnergyReading{
			BuildingName: "Labs",
			EnergyKwh:    float64(i),
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := uc.CreateReading(&reading); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := uc.ListReadings(1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 5 || page.Pages != 3 || len(page.Readings) != 2 {
		t.Fatalf("unexpected page: total=%d pages=%d len=%d", page.Total, page.Pages, len(page.Readings))
	}
	// Newest first.
	if page.Readings[0].EnergyKwh != 4 {
		t.Fatalf("expected newest reading first, got %v", page.Readings[0].EnergyKwh)
	}

	last, err := uc.ListReadings(3, 2)
	if err != nil {
		t.Fatalf("list last page: %v", err)
	}
	if len(last.Readings) != 1 || last.Readings[0].EnergyKwh != 0 {
		t.Fatalf("unexpected last page: %+v", last.Readings)
	}
}

func TestStatsWindow(t *testing.T) {
	uc := newEnergyUseCase(t)

	now := time.Now().UTC()
	inside := entities.EnergyReading{BuildingName: "Labs", EnergyKwh: 2, Cost: 1, Timestamp: now.Add(-time.Hour)}
	alsoInside := entities.EnergyReading{BuildingName: "Library", EnergyKwh: 4, Cost: 3, Timestamp: now.Add(-2 * time.Hour)}
	outside := entities.EnergyReading{BuildingName: "Labs", EnergyKwh: 100, Cost: 50, Timestamp: now.Add(-48 * time.Hour)}
	for _, r := range []*entities.EnergyReading{&inside, &alsoInside, &outside} {
		if err := uc.CreateReading(r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	stats, err := uc.Stats(24)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ReadingsCount != 2 {
		t.Fatalf("expected 2 readings in window, got %d", stats.ReadingsCount)
	}
	if stats.TotalEnergy != 6 || stats.TotalCost != 4 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.AvgPower != 3 {
		t.Fatalf("expected avg 3, got %v", stats.AvgPower)
	}
	if stats.Period != "24h" {
		t.Fatalf("expected period 24h, got %q", stats.Period)
	}
}

func TestListByBuildingWindow(t *testing.T) {
	uc := newEnergyUseCase(t)

	now := time.Now().UTC()
	for _, r := range []entities.EnergyReading{
		{BuildingName: "Labs", EnergyKwh: 1, Timestamp: now.Add(-time.Hour)},
		{BuildingName: "Labs", EnergyKwh: 2, Timestamp: now.Add(-30 * time.Hour)},
		{BuildingName: "Library", EnergyKwh: 3, Timestamp: now.Add(-time.Hour)},
	} {
		reading := r
		if err := uc.CreateReading(&reading); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	readings, err := uc.ListByBuilding("Labs", 24)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(readings) != 1 || readings[0].EnergyKwh != 1 {
		t.Fatalf("expected only the recent Labs reading, got %+v", readings)
	}
}

func TestDeleteReadingNotFound(t *testing.T) {
	uc := newEnergyUseCase(t)

	if err := uc.DeleteReading("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateReadingRequiresBuilding(t *testing.T) {
	uc := newEnergyUseCase(t)

	err := uc.CreateReading(&entities.EnergyReading{EnergyKwh: 1})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
