package usecases

import (
	"fmt"

	"smartcampus-server/entities"
	"smartcampus-server/repositories"
)

type BuildingUseCase struct {
	BuildingRepo repositories.BuildingRepository
}

func NewBuildingUseCase(buildingRepo repositories.BuildingRepository) *BuildingUseCase {
	return &BuildingUseCase{BuildingRepo: buildingRepo}
}

func (uc *BuildingUseCase) CreateBuilding(building *entities.Building) error {
	if building.Name == "" {
		return fmt.Errorf("%w: building name is required", ErrValidation)
	}
	if building.Code == "" {
		return fmt.Errorf("%w: building code is required", ErrValidation)
	}
	return uc.BuildingRepo.Create(building)
}

// GetAllBuildings returns every building sorted by name.
func (uc *BuildingUseCase) GetAllBuildings() ([]entities.Building, error) {
	return uc.BuildingRepo.GetAll()
}
