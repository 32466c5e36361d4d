package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event is the envelope every outbound frame uses. Type distinguishes
// creation, field update and telemetry refresh so clients can pick a
// merge strategy.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Outbound event types.
const (
	EventSensorCreated = "sensor_created"
	EventSensorUpdated = "sensor_updated"
	EventRealTimeData  = "real_time_data"
	EventEnergyUpdate  = "energy_update"
	EventNewAlert      = "new_alert"
	EventAlertResolved = "alert_resolved"
)

// Client is one connected observer. Writes are serialized per client;
// gorilla connections do not allow concurrent writers.
type Client struct {
	ID   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *Client) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// Hub is the observer registry for broadcast fan-out. Clients are
// added on connect and removed on disconnect or write failure;
// delivery is best-effort with no acknowledgement.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

// Register adds a freshly upgraded connection to the registry.
func (h *Hub) Register(conn *websocket.Conn) *Client {
	client := &Client{ID: uuid.New().String(), conn: conn}
	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()
	return client
}

// Unregister removes a client and closes its connection.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		_ = client.conn.Close()
	}
	h.mu.Unlock()
}

// Broadcast sends the event to every connected client. A client whose
// write fails is dropped from the registry.
func (h *Hub) Broadcast(eventType string, data any) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		log.Printf("broadcast marshal failed for %s: %v", eventType, err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(payload); err != nil {
			log.Printf("dropping client %s: %v", c.ID, err)
			h.Unregister(c)
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
