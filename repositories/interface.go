package repositories

import (
	"time"

	"smartcampus-server/entities"
)

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Count() (int64, error)
}

type BuildingRepository interface {
	Create(building *entities.Building) error
	GetByID(id string) (*entities.Building, error)
	GetAll() ([]entities.Building, error)
	Count() (int64, error)
}

type SensorRepository interface {
	Create(sensor *entities.Sensor) error
	GetByID(id string) (*entities.Sensor, error)
	GetBySensorID(sensorID string) (*entities.Sensor, error)
	GetAll() ([]entities.Sensor, error)
	// ApplyTelemetry atomically overwrites the gauges of the sensor
	// identified by t.SensorID, pushes t.Power onto the bounded trend
	// window and stamps LastUpdated. With autoCreate the sensor is
	// created on first contact; without it unknown ids fail.
	ApplyTelemetry(t entities.Telemetry, autoCreate bool) (*entities.Sensor, error)
	// Patch merge-patches the given columns onto the sensor with the
	// storage key id. The trend window is never touched.
	Patch(id string, fields map[string]any) (*entities.Sensor, error)
	Count() (int64, error)
}

type EnergyRepository interface {
	Create(reading *entities.EnergyReading) error
	List(page, limit int) ([]entities.EnergyReading, int64, error)
	ListSince(since time.Time) ([]entities.EnergyReading, error)
	ListByBuilding(buildingName string, since time.Time) ([]entities.EnergyReading, error)
	Delete(id string) error
}

type AlertRepository interface {
	Create(alert *entities.Alert) error
	GetByID(id string) (*entities.Alert, error)
	ListActive(limit int) ([]entities.Alert, error)
	Update(alert *entities.Alert) error
}
