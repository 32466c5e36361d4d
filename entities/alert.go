package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AlertTypeAnomaly     = "anomaly"
	AlertTypeThreshold   = "threshold"
	AlertTypeMaintenance = "maintenance"

	AlertStatusActive   = "active"
	AlertStatusResolved = "resolved"
)

type Alert struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Type       string `json:"type"`
	SensorID   string `gorm:"index" json:"sensor_id,omitempty"`
	SensorName string `json:"sensor_name"`
	Building   string `gorm:"index" json:"building"`
	Severity   string `json:"severity"` // low, medium, high
	Message    string `json:"message"`
	Status     string `gorm:"index" json:"status"`
	CreatedAt  string `json:"created_at"`
}

func (a *Alert) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = AlertStatusActive
	}
	a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return
}
