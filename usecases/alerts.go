package usecases

import (
	"errors"
	"fmt"

	"smartcampus-server/entities"
	"smartcampus-server/repositories"

	"gorm.io/gorm"
)

type AlertUseCase struct {
	AlertRepo repositories.AlertRepository
}

func NewAlertUseCase(alertRepo repositories.AlertRepository) *AlertUseCase {
	return &AlertUseCase{AlertRepo: alertRepo}
}

func (uc *AlertUseCase) CreateAlert(alert *entities.Alert) error {
	if alert.Message == "" {
		return fmt.Errorf("%w: alert message is required", ErrValidation)
	}
	return uc.AlertRepo.Create(alert)
}

// GetActiveAlerts returns the most recent active alerts, capped at 50.
func (uc *AlertUseCase) GetActiveAlerts() ([]entities.Alert, error) {
	return uc.AlertRepo.ListActive(50)
}

// UpdateAlert merge-patches the provided non-empty fields, typically a
// status flip to resolved.
func (uc *AlertUseCase) UpdateAlert(alert *entities.Alert) (*entities.Alert, error) {
	if alert.ID == "" {
		return nil, fmt.Errorf("%w: alert id is required", ErrValidation)
	}

	existing, err := uc.AlertRepo.GetByID(alert.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: alert %s", ErrNotFound, alert.ID)
	}
	if err != nil {
		return nil, err
	}

	if alert.Status != "" {
		existing.Status = alert.Status
	}
	if alert.Severity != "" {
		existing.Severity = alert.Severity
	}
	if alert.Message != "" {
		existing.Message = alert.Message
	}

	if err := uc.AlertRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
