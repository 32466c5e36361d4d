package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"smartcampus-server/entities"
	"smartcampus-server/services"
	"smartcampus-server/usecases"
	"smartcampus-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// incomingMessage peeks the type discriminator of an inbound frame.
type incomingMessage struct {
	Type string `json:"type"`
}

// telemetryPayload is the device-channel telemetry frame. Unknown
// fields are rejected; absent optional gauges zero-fill.
type telemetryPayload struct {
	Type     string  `json:"type"`
	SensorID string  `json:"sensor_id"`
	Power    float64 `json:"power"`
	Temp     float64 `json:"temp"`
	Voltage  float64 `json:"voltage"`
	Current  float64 `json:"current"`
}

// WSHandler owns the socket surface: telemetry ingress from devices
// and broadcast egress to dashboards, over the same endpoint.
type WSHandler struct {
	hub        *ws.Hub
	sensors    *usecases.SensorUseCase
	aggregator *services.EnergyAggregator
}

func NewWSHandler(hub *ws.Hub, sensors *usecases.SensorUseCase, aggregator *services.EnergyAggregator) *WSHandler {
	return &WSHandler{hub: hub, sensors: sensors, aggregator: aggregator}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleWS upgrades the connection and reads frames until disconnect.
// GET /ws
//
// The device channel carries no auth. Ingestion failures are logged
// and swallowed; a device has no response channel.
func (h *WSHandler) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := h.hub.Register(conn)
	log.Printf("client connected: %s", client.ID)

	defer func() {
		h.hub.Unregister(client)
		log.Printf("client disconnected: %s", client.ID)
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client %s closed connection", client.ID)
			} else {
				log.Printf("read error from %s: %v", client.ID, err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		var base incomingMessage
		if err := json.Unmarshal(message, &base); err != nil {
			log.Printf("invalid json from %s: %v", client.ID, err)
			continue
		}

		switch base.Type {
		case "sensor_data":
			h.handleTelemetry(client.ID, message)
		case "heartbeat":
			// No-op, could update a last-seen cache
		default:
			log.Printf("unknown message type from %s: %s", client.ID, base.Type)
		}
	}
}

func (h *WSHandler) handleTelemetry(clientID string, message []byte) {
	dec := json.NewDecoder(bytes.NewReader(message))
	dec.DisallowUnknownFields()

	var payload telemetryPayload
	if err := dec.Decode(&payload); err != nil {
		log.Printf("invalid sensor_data payload from %s: %v", clientID, err)
		return
	}

	sensor, err := h.sensors.ApplyTelemetry(entities.Telemetry{
		SensorID: payload.SensorID,
		Power:    payload.Power,
		Temp:     payload.Temp,
		Voltage:  payload.Voltage,
		Current:  payload.Current,
	})
	if err != nil {
		// Fire-and-forget channel: no error frame goes back.
		log.Printf("telemetry for %q from %s rejected: %v", payload.SensorID, clientID, err)
		return
	}

	h.hub.Broadcast(ws.EventRealTimeData, sensor)
	if h.aggregator != nil {
		h.aggregator.AddPoint(sensor.BuildingName, sensor.Power)
	}
	log.Printf("sensor updated: %s power=%.2f", sensor.SensorID, sensor.Power)
}

// GetConnectedClients GET /api/clients/connected
func (h *WSHandler) GetConnectedClients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.hub.Count()})
}
