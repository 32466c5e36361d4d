package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sensor types and statuses are closed enums; the ingestion path never
// changes the type after creation.
const (
	SensorTypeAC          = "ac"
	SensorTypeLight       = "light"
	SensorTypeMeter       = "meter"
	SensorTypeTemperature = "temperature"

	SensorStatusActive   = "active"
	SensorStatusInactive = "inactive"
	SensorStatusWarning  = "warning"
)

// TrendWindow caps the per-sensor power history kept on the record.
const TrendWindow = 10

// Sensor is keyed externally by SensorID (the identifier the physical
// device reports), not by the storage-assigned ID.
type Sensor struct {
	ID           string                       `gorm:"primaryKey" json:"id"`
	SensorID     string                       `gorm:"uniqueIndex;not null" json:"sensor_id"`
	BuildingID   string                       `gorm:"index" json:"building_id,omitempty"`
	Building     *Building                    `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	BuildingName string                       `gorm:"index" json:"building_name"`
	Name         string                       `json:"name"`
	Type         string                       `json:"type"`
	Power        float64                      `json:"power"`
	Temp         float64                      `json:"temp"`
	Voltage      float64                      `json:"voltage"`
	Current      float64                      `json:"current"`
	Status       string                       `json:"status"`
	Threshold    float64                      `json:"threshold"`
	Trend        datatypes.JSONSlice[float64] `json:"trend"`
	LastUpdated  time.Time                    `gorm:"index" json:"last_updated"`
}

func (s *Sensor) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = SensorStatusActive
	}
	if s.Threshold == 0 {
		s.Threshold = 5
	}
	if s.LastUpdated.IsZero() {
		s.LastUpdated = time.Now().UTC()
	}
	return
}

// Telemetry is one gauge report from a device. Absent optional gauges
// arrive as zero values and overwrite the stored ones wholesale.
type Telemetry struct {
	SensorID string
	Power    float64
	Temp     float64
	Voltage  float64
	Current  float64
}
