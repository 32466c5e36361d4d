package repositories

import (
	"smartcampus-server/db"
	"smartcampus-server/entities"
)

type alertPgRepository struct {
	db db.Database
}

func NewAlertPgRepository(database db.Database) AlertRepository {
	return &alertPgRepository{db: database}
}

func (r *alertPgRepository) Create(alert *entities.Alert) error {
	return r.db.GetDB().Create(alert).Error
}

func (r *alertPgRepository) GetByID(id string) (*entities.Alert, error) {
	var alert entities.Alert
	err := r.db.GetDB().Where("id = ?", id).First(&alert).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *alertPgRepository) ListActive(limit int) ([]entities.Alert, error) {
	var alerts []entities.Alert
	err := r.db.GetDB().
		Where("status = ?", entities.AlertStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

func (r *alertPgRepository) Update(alert *entities.Alert) error {
	return r.db.GetDB().Save(alert).Error
}
