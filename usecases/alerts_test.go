package usecases

import (
	"errors"
	"testing"

	"smartcampus-server/entities"
	"smartcampus-server/repositories"
)

func newAlertUseCase(t *testing.T) *AlertUseCase {
	t.Helper()
	return NewAlertUseCase(repositories.NewAlertPgRepository(openTestDB(t)))
}

func TestActiveAlertsExcludeResolved(t *testing.T) {
	uc := newAlertUseCase(t)

	active := entities.Alert{Type: entities.AlertTypeThreshold, Message: "over threshold", Severity: "high"}
	if err := uc.CreateAlert(&active); err != nil {
		t.Fatalf("create: %v", err)
	}
	resolved := entities.Alert{Type: entities.AlertTypeAnomaly, Message: "spike", Status: entities.AlertStatusResolved}
	if err := uc.CreateAlert(&resolved); err != nil {
		t.Fatalf("create: %v", err)
	}

	alerts, err := uc.GetActiveAlerts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 1 || alerts[0].ID != active.ID {
		t.Fatalf("expected only the active alert, got %+v", alerts)
	}
}

func TestUpdateAlertResolves(t *testing.T) {
	uc := newAlertUseCase(t)

	alert := entities.Alert{Type: entities.AlertTypeMaintenance, Message: "filter change due"}
	if err := uc.CreateAlert(&alert); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := uc.UpdateAlert(&entities.Alert{ID: alert.ID, Status: entities.AlertStatusResolved})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != entities.AlertStatusResolved {
		t.Fatalf("expected resolved, got %q", updated.Status)
	}
	// Untouched fields survive the merge.
	if updated.Message != "filter change due" {
		t.Fatalf("message lost in merge: %q", updated.Message)
	}
}

func TestUpdateAlertNotFound(t *testing.T) {
	uc := newAlertUseCase(t)

	_, err := uc.UpdateAlert(&entities.Alert{ID: "missing", Status: entities.AlertStatusResolved})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateAlertRequiresMessage(t *testing.T) {
	uc := newAlertUseCase(t)

	if err := uc.CreateAlert(&entities.Alert{Type: entities.AlertTypeAnomaly}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
