package repositories

import (
	"errors"
	"time"

	"smartcampus-server/db"
	"smartcampus-server/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sensorPgRepository struct {
	db db.Database
}

func NewSensorPgRepository(database db.Database) SensorRepository {
	return &sensorPgRepository{db: database}
}

func (r *sensorPgRepository) Create(sensor *entities.Sensor) error {
	if err := r.resolveBuildingName(r.db.GetDB(), sensor); err != nil {
		return err
	}
	return r.db.GetDB().Create(sensor).Error
}

func (r *sensorPgRepository) GetByID(id string) (*entities.Sensor, error) {
	var sensor entities.Sensor
	err := r.db.GetDB().Preload("Building").Where("id = ?", id).First(&sensor).Error
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (r *sensorPgRepository) GetBySensorID(sensorID string) (*entities.Sensor, error) {
	var sensor entities.Sensor
	err := r.db.GetDB().Where("sensor_id = ?", sensorID).First(&sensor).Error
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

// GetAll returns every sensor with its building preloaded, sorted the
// way the dashboard lists them.
func (r *sensorPgRepository) GetAll() ([]entities.Sensor, error) {
	var sensors []entities.Sensor
	err := r.db.GetDB().Preload("Building").Order("building_name ASC").Find(&sensors).Error
	return sensors, err
}

func (r *sensorPgRepository) ApplyTelemetry(t entities.Telemetry, autoCreate bool) (*entities.Sensor, error) {
	var sensor entities.Sensor

	err := r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent telemetry for the same sensor on the
		// row lock. sqlite has no row locks; its writers are already
		// serialized by the driver.
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		err := q.Where("sensor_id = ?", t.SensorID).First(&sensor).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if !autoCreate {
				return err
			}
			sensor = entities.Sensor{SensorID: t.SensorID}
		case err != nil:
			return err
		}

		sensor.Power = t.Power
		sensor.Temp = t.Temp
		sensor.Voltage = t.Voltage
		sensor.Current = t.Current
		sensor.Trend = append(sensor.Trend, t.Power)
		if len(sensor.Trend) > entities.TrendWindow {
			sensor.Trend = sensor.Trend[len(sensor.Trend)-entities.TrendWindow:]
		}
		sensor.LastUpdated = time.Now().UTC()

		return tx.Save(&sensor).Error
	})
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (r *sensorPgRepository) Patch(id string, fields map[string]any) (*entities.Sensor, error) {
	err := r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		var sensor entities.Sensor
		if err := tx.Where("id = ?", id).First(&sensor).Error; err != nil {
			return err
		}

		// Re-denormalize the building name when the sensor moves.
		if buildingID, ok := fields["building_id"].(string); ok {
			var building entities.Building
			if err := tx.Where("id = ?", buildingID).First(&building).Error; err == nil {
				fields["building_name"] = building.Name
			}
		}
		fields["last_updated"] = time.Now().UTC()

		return tx.Model(&sensor).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *sensorPgRepository) Count() (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Sensor{}).Count(&count).Error
	return count, err
}

func (r *sensorPgRepository) resolveBuildingName(tx *gorm.DB, sensor *entities.Sensor) error {
	if sensor.BuildingID == "" || sensor.BuildingName != "" {
		return nil
	}
	var building entities.Building
	if err := tx.Where("id = ?", sensor.BuildingID).First(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	sensor.BuildingName = building.Name
	return nil
}
