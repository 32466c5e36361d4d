package httpHandler

import (
	"net/http"

	"smartcampus-server/entities"
	"smartcampus-server/usecases"

	"github.com/gin-gonic/gin"
)

type BuildingHandler struct {
	useCase *usecases.BuildingUseCase
}

func NewBuildingHandler(useCase *usecases.BuildingUseCase) *BuildingHandler {
	return &BuildingHandler{useCase: useCase}
}

// GetAllBuildings handles GET /api/buildings
func (h *BuildingHandler) GetAllBuildings(c *gin.Context) {
	buildings, err := h.useCase.GetAllBuildings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve buildings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  buildings,
		"count": len(buildings),
	})
}

// CreateBuilding handles POST /api/buildings (admin only)
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	claims, ok := CurrentUser(c)
	if !ok || claims.Role != entities.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin only"})
		return
	}

	var building entities.Building
	if err := c.ShouldBindJSON(&building); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.CreateBuilding(&building); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Building created successfully",
		"data":    building,
	})
}
