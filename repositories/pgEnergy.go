package repositories

import (
	"time"

	"smartcampus-server/db"
	"smartcampus-server/entities"

	"gorm.io/gorm"
)

type energyPgRepository struct {
	db db.Database
}

func NewEnergyPgRepository(database db.Database) EnergyRepository {
	return &energyPgRepository{db: database}
}

func (r *energyPgRepository) Create(reading *entities.EnergyReading) error {
	return r.db.GetDB().Create(reading).Error
}

// List returns one page of readings, newest first, plus the total count.
func (r *energyPgRepository) List(page, limit int) ([]entities.EnergyReading, int64, error) {
	var readings []entities.EnergyReading
	var total int64

	if err := r.db.GetDB().Model(&entities.EnergyReading{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.GetDB().
		Order("timestamp DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&readings).Error
	return readings, total, err
}

func (r *energyPgRepository) ListSince(since time.Time) ([]entities.EnergyReading, error) {
	var readings []entities.EnergyReading
	err := r.db.GetDB().Where("timestamp >= ?", since).Find(&readings).Error
	return readings, err
}

func (r *energyPgRepository) ListByBuilding(buildingName string, since time.Time) ([]entities.EnergyReading, error) {
	var readings []entities.EnergyReading
	err := r.db.GetDB().
		Where("building_name = ? AND timestamp >= ?", buildingName, since).
		Order("timestamp DESC").
		Find(&readings).Error
	return readings, err
}

func (r *energyPgRepository) Delete(id string) error {
	result := r.db.GetDB().Where("id = ?", id).Delete(&entities.EnergyReading{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
