package httpHandler

import (
	"net/http"
	"strconv"

	"smartcampus-server/entities"
	"smartcampus-server/usecases"
	"smartcampus-server/ws"

	"github.com/gin-gonic/gin"
)

type EnergyHandler struct {
	useCase *usecases.EnergyUseCase
	hub     *ws.Hub
}

func NewEnergyHandler(useCase *usecases.EnergyUseCase, hub *ws.Hub) *EnergyHandler {
	return &EnergyHandler{useCase: useCase, hub: hub}
}

type energyReadingRequest struct {
	BuildingID   string   `json:"building_id"`
	BuildingName string   `json:"building_name" binding:"required"`
	EnergyKwh    *float64 `json:"energy_kwh" binding:"required"`
	Voltage      float64  `json:"voltage"`
	Current      float64  `json:"current"`
	Cost         float64  `json:"cost"`
}

// ListReadings handles GET /api/energy?page&limit
func (h *EnergyHandler) ListReadings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.useCase.ListReadings(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve readings"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateReading handles POST /api/energy
func (h *EnergyHandler) CreateReading(c *gin.Context) {
	var req energyReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "building_name and energy_kwh required"})
		return
	}

	reading := entities.EnergyReading{
		BuildingID:   req.BuildingID,
		BuildingName: req.BuildingName,
		EnergyKwh:    *req.EnergyKwh,
		Voltage:      req.Voltage,
		Current:      req.Current,
		Cost:         req.Cost,
	}
	if err := h.useCase.CreateReading(&reading); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventEnergyUpdate, reading)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Reading created successfully",
		"data":    reading,
	})
}

// DeleteReading handles DELETE /api/energy/:id
func (h *EnergyHandler) DeleteReading(c *gin.Context) {
	id := c.Param("id")

	if err := h.useCase.DeleteReading(id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Reading not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "id": id})
}

// ListByBuilding handles GET /api/energy/building/:building?hours
func (h *EnergyHandler) ListByBuilding(c *gin.Context) {
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "24"))

	readings, err := h.useCase.ListByBuilding(c.Param("building"), hours)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  readings,
		"count": len(readings),
	})
}

// Stats handles GET /api/energy/stats?hours
func (h *EnergyHandler) Stats(c *gin.Context) {
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "24"))

	stats, err := h.useCase.Stats(hours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
