package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnergyReading struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	BuildingID   string    `gorm:"index" json:"building_id,omitempty"`
	BuildingName string    `gorm:"index" json:"building_name"`
	EnergyKwh    float64   `json:"energy_kwh"`
	Voltage      float64   `json:"voltage"`
	Current      float64   `json:"current"`
	Cost         float64   `json:"cost"`
	Timestamp    time.Time `gorm:"index" json:"timestamp"`
}

func (e *EnergyReading) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return
}
