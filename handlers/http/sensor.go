package httpHandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"smartcampus-server/entities"
	"smartcampus-server/usecases"
	"smartcampus-server/ws"

	"github.com/gin-gonic/gin"
)

type SensorHandler struct {
	useCase    *usecases.SensorUseCase
	hub        *ws.Hub
	adminEmail string
}

func NewSensorHandler(useCase *usecases.SensorUseCase, hub *ws.Hub, adminEmail string) *SensorHandler {
	return &SensorHandler{useCase: useCase, hub: hub, adminEmail: adminEmail}
}

// GetAllSensors handles GET /api/sensors
func (h *SensorHandler) GetAllSensors(c *gin.Context) {
	sensors, err := h.useCase.GetAllSensors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sensors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  sensors,
		"count": len(sensors),
	})
}

// CreateSensor handles POST /api/sensors (admin only)
func (h *SensorHandler) CreateSensor(c *gin.Context) {
	claims, ok := CurrentUser(c)
	if !ok || claims.Role != entities.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin only"})
		return
	}

	var sensor entities.Sensor
	if err := c.ShouldBindJSON(&sensor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.CreateSensor(&sensor); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventSensorCreated, sensor)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Sensor created successfully",
		"data":    sensor,
	})
}

// UpdateSensor handles PUT /api/sensors/:id.
//
// Without an identity only a body whose key set is exactly {status} is
// accepted (the public toggle). With an identity the caller must be an
// operator, or the designated admin account.
func (h *SensorHandler) UpdateSensor(c *gin.Context) {
	id := c.Param("id")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	claims, authed := CurrentUser(c)
	if !authed {
		if _, ok := raw["status"]; !ok || len(raw) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Auth required for this update"})
			return
		}
	} else if !h.canUpdateSensors(claims) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Operator or admin only"})
		return
	}

	patch, err := parseSensorPatch(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sensor, err := h.useCase.UpdateSensor(id, patch)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.hub.Broadcast(ws.EventSensorUpdated, sensor)
	c.JSON(http.StatusOK, gin.H{
		"message": "Sensor updated successfully",
		"data":    sensor,
	})
}

// canUpdateSensors is the control-plane policy: operators may update
// any sensor, and the admin role counts only for the one designated
// admin account.
func (h *SensorHandler) canUpdateSensors(claims *Claims) bool {
	if claims.Role == entities.RoleOperator {
		return true
	}
	return claims.Role == entities.RoleAdmin && claims.Email == h.adminEmail
}

// parseSensorPatch converts the raw body into a typed patch, rejecting
// unknown or wrong-typed fields outright.
func parseSensorPatch(raw map[string]json.RawMessage) (usecases.SensorPatch, error) {
	var patch usecases.SensorPatch

	for key, value := range raw {
		var err error
		switch key {
		case "name":
			patch.Name, err = decodeField[string](key, value)
		case "type":
			patch.Type, err = decodeField[string](key, value)
		case "building_id":
			patch.BuildingID, err = decodeField[string](key, value)
		case "status":
			patch.Status, err = decodeField[string](key, value)
		case "threshold":
			patch.Threshold, err = decodeField[float64](key, value)
		case "power":
			patch.Power, err = decodeField[float64](key, value)
		case "temp":
			patch.Temp, err = decodeField[float64](key, value)
		case "voltage":
			patch.Voltage, err = decodeField[float64](key, value)
		case "current":
			patch.Current, err = decodeField[float64](key, value)
		default:
			return patch, fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return patch, err
		}
	}
	return patch, nil
}

func decodeField[T any](key string, value json.RawMessage) (*T, error) {
	var v T
	if err := json.Unmarshal(value, &v); err != nil {
		return nil, fmt.Errorf("field %q has the wrong type", key)
	}
	return &v, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecases.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, usecases.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
