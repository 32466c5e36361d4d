package httpHandler

import (
	"net/http"

	"smartcampus-server/entities"
	"smartcampus-server/usecases"
	"smartcampus-server/ws"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	useCase *usecases.AlertUseCase
	hub     *ws.Hub
}

func NewAlertHandler(useCase *usecases.AlertUseCase, hub *ws.Hub) *AlertHandler {
	return &AlertHandler{useCase: useCase, hub: hub}
}

// GetActiveAlerts handles GET /api/alerts
func (h *AlertHandler) GetActiveAlerts(c *gin.Context) {
	alerts, err := h.useCase.GetActiveAlerts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve alerts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  alerts,
		"count": len(alerts),
	})
}

// CreateAlert handles POST /api/alerts
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var alert entities.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.CreateAlert(&alert); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventNewAlert, alert)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Alert created successfully",
		"data":    alert,
	})
}

// UpdateAlert handles PUT /api/alerts/:id (auth required)
func (h *AlertHandler) UpdateAlert(c *gin.Context) {
	var alert entities.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	alert.ID = c.Param("id")

	updated, err := h.useCase.UpdateAlert(&alert)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventAlertResolved, updated)
	c.JSON(http.StatusOK, gin.H{
		"message": "Alert updated successfully",
		"data":    updated,
	})
}
