package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gorilla/websocket"
)

// Simulates the seeded campus sensors against a running server by
// streaming sensor_data frames over the device websocket channel.

const defaultServerURL = "ws://localhost:5000/ws"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	rowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))
)

type simSensor struct {
	ID        string
	basePower float64
	baseTemp  float64
	lastPower float64
}

type telemetryFrame struct {
	Type     string  `json:"type"`
	SensorID string  `json:"sensor_id"`
	Power    float64 `json:"power"`
	Temp     float64 `json:"temp"`
	Voltage  float64 `json:"voltage"`
	Current  float64 `json:"current"`
}

type model struct {
	serverURL string
	conn      *websocket.Conn
	sensors   []simSensor
	cursor    int // which sensor fires next
	sent      int
	connected bool
	message   string
	quitting  bool
}

type connectedMsg struct{ conn *websocket.Conn }
type sentMsg struct {
	index int
	power float64
}
type tickMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(serverURL string) model {
	return model{
		serverURL: serverURL,
		sensors: []simSensor{
			{ID: "lab101-ac", basePower: 2.5, baseTemp: 24.0},
			{ID: "lab-meter", basePower: 15.0, baseTemp: 0},
			{ID: "hst101-ac", basePower: 3.2, baseTemp: 25.0},
			{ID: "hst-meter", basePower: 22.0, baseTemp: 0},
			{ID: "lib101-ac", basePower: 2.6, baseTemp: 22.5},
		},
	}
}

func (m model) Init() tea.Cmd {
	return connect(m.serverURL)
}

func connect(serverURL string) tea.Cmd {
	return func() tea.Msg {
		conn, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach %s: %w", serverURL, err)}
		}
		return connectedMsg{conn: conn}
	}
}

func tick() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

func sendTelemetry(conn *websocket.Conn, index int, s simSensor) tea.Cmd {
	return func() tea.Msg {
		power := s.basePower * (0.8 + 0.4*rand.Float64())
		frame := telemetryFrame{
			Type:     "sensor_data",
			SensorID: s.ID,
			Power:    power,
			Temp:     s.baseTemp + rand.Float64()*2 - 1,
			Voltage:  230 + rand.Float64()*10 - 5,
			Current:  power * 1000 / 230,
		}
		payload, _ := json.Marshal(frame)
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return errMsg{fmt.Errorf("send failed: %w", err)}
		}
		return sentMsg{index: index, power: power}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			if m.conn != nil {
				_ = m.conn.Close()
			}
			return m, tea.Quit
		}

	case connectedMsg:
		m.conn = msg.conn
		m.connected = true
		m.message = "connected, streaming telemetry"
		return m, tick()

	case tickMsg:
		if !m.connected {
			return m, nil
		}
		s := m.sensors[m.cursor]
		cmd := sendTelemetry(m.conn, m.cursor, s)
		m.cursor = (m.cursor + 1) % len(m.sensors)
		return m, tea.Batch(cmd, tick())

	case sentMsg:
		m.sensors[msg.index].lastPower = msg.power
		m.sent++
		return m, nil

	case errMsg:
		m.connected = false
		m.message = msg.Error()
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "bye\n"
	}

	s := titleStyle.Render("Campus Sensor Simulator") + "\n"
	s += statusStyle.Render(fmt.Sprintf("server: %s   frames sent: %d", m.serverURL, m.sent)) + "\n\n"

	for i, sensor := range m.sensors {
		line := fmt.Sprintf("%-12s last power: %6.2f kW", sensor.ID, sensor.lastPower)
		if m.connected && i == (m.cursor+len(m.sensors)-1)%len(m.sensors) && m.sent > 0 {
			s += activeStyle.Render("> "+line) + "\n"
		} else {
			s += rowStyle.Render("  "+line) + "\n"
		}
	}

	s += "\n"
	if m.message != "" {
		if m.connected {
			s += statusStyle.Render(m.message) + "\n"
		} else {
			s += errorStyle.Render(m.message) + "\n"
		}
	}
	s += statusStyle.Render("press q to quit") + "\n"
	return s
}

func main() {
	serverURL := defaultServerURL
	if v := os.Getenv("SIM_SERVER_URL"); v != "" {
		serverURL = v
	}

	p := tea.NewProgram(initialModel(serverURL))
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
