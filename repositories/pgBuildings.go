package repositories

import (
	"smartcampus-server/db"
	"smartcampus-server/entities"
)

type buildingPgRepository struct {
	db db.Database
}

func NewBuildingPgRepository(database db.Database) BuildingRepository {
	return &buildingPgRepository{db: database}
}

func (r *buildingPgRepository) Create(building *entities.Building) error {
	return r.db.GetDB().Create(building).Error
}

func (r *buildingPgRepository) GetByID(id string) (*entities.Building, error) {
	var building entities.Building
	err := r.db.GetDB().Where("id = ?", id).First(&building).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func (r *buildingPgRepository) GetAll() ([]entities.Building, error) {
	var buildings []entities.Building
	err := r.db.GetDB().Order("name ASC").Find(&buildings).Error
	return buildings, err
}

func (r *buildingPgRepository) Count() (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Building{}).Count(&count).Error
	return count, err
}
