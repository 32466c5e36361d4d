package usecases

import (
	"errors"
	"fmt"
	"time"

	"smartcampus-server/entities"
	"smartcampus-server/repositories"

	"gorm.io/gorm"
)

type EnergyUseCase struct {
	EnergyRepo repositories.EnergyRepository
}

func NewEnergyUseCase(energyRepo repositories.EnergyRepository) *EnergyUseCase {
	return &EnergyUseCase{EnergyRepo: energyRepo}
}

// EnergyPage is one page of readings, newest first.
type EnergyPage struct {
	Readings []entities.EnergyReading `json:"readings"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	Pages    int                      `json:"pages"`
}

// EnergyStats aggregates readings over a trailing window.
type EnergyStats struct {
	TotalEnergy   float64 `json:"totalEnergy"`
	TotalCost     float64 `json:"totalCost"`
	AvgPower      float64 `json:"avgPower"`
	ReadingsCount int     `json:"readingsCount"`
	Period        string  `json:"period"`
}

func (uc *EnergyUseCase) CreateReading(reading *entities.EnergyReading) error {
	if reading.BuildingName == "" {
		return fmt.Errorf("%w: building_name is required", ErrValidation)
	}
	return uc.EnergyRepo.Create(reading)
}

func (uc *EnergyUseCase) ListReadings(page, limit int) (*EnergyPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	readings, total, err := uc.EnergyRepo.List(page, limit)
	if err != nil {
		return nil, err
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &EnergyPage{Readings: readings, Total: total, Page: page, Pages: pages}, nil
}

func (uc *EnergyUseCase) ListByBuilding(buildingName string, hours int) ([]entities.EnergyReading, error) {
	if buildingName == "" {
		return nil, fmt.Errorf("%w: building name is required", ErrValidation)
	}
	if hours < 1 {
		hours = 24
	}
	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	return uc.EnergyRepo.ListByBuilding(buildingName, cutoff)
}

func (uc *EnergyUseCase) Stats(hours int) (*EnergyStats, error) {
	if hours < 1 {
		hours = 24
	}
	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	readings, err := uc.EnergyRepo.ListSince(cutoff)
	if err != nil {
		return nil, err
	}

	stats := &EnergyStats{
		ReadingsCount: len(readings),
		Period:        fmt.Sprintf("%dh", hours),
	}
	for _, r := range readings {
		stats.TotalEnergy += r.EnergyKwh
		stats.TotalCost += r.Cost
	}
	if len(readings) > 0 {
		stats.AvgPower = stats.TotalEnergy / float64(len(readings))
	}
	return stats, nil
}

func (uc *EnergyUseCase) DeleteReading(id string) error {
	if id == "" {
		return fmt.Errorf("%w: reading id is required", ErrValidation)
	}
	err := uc.EnergyRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: reading %s", ErrNotFound, id)
	}
	return err
}
