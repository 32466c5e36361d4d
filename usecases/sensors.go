package usecases

import (
	"errors"
	"fmt"

	"smartcampus-server/entities"
	"smartcampus-server/repositories"

	"gorm.io/gorm"
)

type SensorUseCase struct {
	SensorRepo repositories.SensorRepository
	// AutoCreate controls the telemetry path's behavior on unknown
	// sensor ids: create on first contact, or reject.
	AutoCreate bool
}

func NewSensorUseCase(sensorRepo repositories.SensorRepository, autoCreate bool) *SensorUseCase {
	return &SensorUseCase{
		SensorRepo: sensorRepo,
		AutoCreate: autoCreate,
	}
}

// SensorPatch carries the fields a PUT may change. Nil means "leave
// alone"; the trend window is never part of a patch.
type SensorPatch struct {
	Name       *string
	Type       *string
	BuildingID *string
	Status     *string
	Threshold  *float64
	Power      *float64
	Temp       *float64
	Voltage    *float64
	Current    *float64
}

func validSensorType(t string) bool {
	switch t {
	case entities.SensorTypeAC, entities.SensorTypeLight, entities.SensorTypeMeter, entities.SensorTypeTemperature:
		return true
	}
	return false
}

func validSensorStatus(s string) bool {
	switch s {
	case entities.SensorStatusActive, entities.SensorStatusInactive, entities.SensorStatusWarning:
		return true
	}
	return false
}

// CreateSensor registers a new sensor record.
func (uc *SensorUseCase) CreateSensor(sensor *entities.Sensor) error {
	if sensor.SensorID == "" {
		return fmt.Errorf("%w: sensor_id is required", ErrValidation)
	}
	if sensor.Type != "" && !validSensorType(sensor.Type) {
		return fmt.Errorf("%w: unknown sensor type %q", ErrValidation, sensor.Type)
	}
	if sensor.Status != "" && !validSensorStatus(sensor.Status) {
		return fmt.Errorf("%w: unknown sensor status %q", ErrValidation, sensor.Status)
	}
	return uc.SensorRepo.Create(sensor)
}

// GetAllSensors returns every sensor, building preloaded, sorted by
// building name.
func (uc *SensorUseCase) GetAllSensors() ([]entities.Sensor, error) {
	return uc.SensorRepo.GetAll()
}

func (uc *SensorUseCase) GetSensor(id string) (*entities.Sensor, error) {
	sensor, err := uc.SensorRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: sensor %s", ErrNotFound, id)
	}
	return sensor, err
}

// ApplyTelemetry runs one gauge report through the store: overwrite
// gauges, push power onto the trend window, stamp LastUpdated.
func (uc *SensorUseCase) ApplyTelemetry(t entities.Telemetry) (*entities.Sensor, error) {
	if t.SensorID == "" {
		return nil, fmt.Errorf("%w: sensor_id is required", ErrValidation)
	}
	sensor, err := uc.SensorRepo.ApplyTelemetry(t, uc.AutoCreate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: unknown sensor %q", ErrNotFound, t.SensorID)
	}
	return sensor, err
}

// UpdateSensor merge-patches the given fields onto the sensor with the
// storage key id.
func (uc *SensorUseCase) UpdateSensor(id string, patch SensorPatch) (*entities.Sensor, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: sensor id is required", ErrValidation)
	}
	if patch.Type != nil && !validSensorType(*patch.Type) {
		return nil, fmt.Errorf("%w: unknown sensor type %q", ErrValidation, *patch.Type)
	}
	if patch.Status != nil && !validSensorStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown sensor status %q", ErrValidation, *patch.Status)
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Type != nil {
		fields["type"] = *patch.Type
	}
	if patch.BuildingID != nil {
		fields["building_id"] = *patch.BuildingID
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.Threshold != nil {
		fields["threshold"] = *patch.Threshold
	}
	if patch.Power != nil {
		fields["power"] = *patch.Power
	}
	if patch.Temp != nil {
		fields["temp"] = *patch.Temp
	}
	if patch.Voltage != nil {
		fields["voltage"] = *patch.Voltage
	}
	if patch.Current != nil {
		fields["current"] = *patch.Current
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	sensor, err := uc.SensorRepo.Patch(id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: sensor %s", ErrNotFound, id)
	}
	return sensor, err
}
