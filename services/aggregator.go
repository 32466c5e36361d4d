package services

import (
	"log"
	"time"

	"smartcampus-server/cache"
	"smartcampus-server/entities"
	"smartcampus-server/usecases"
	"smartcampus-server/ws"
)

// EnergyAggregator rolls buffered telemetry samples up into energy
// readings, one per building per interval, and announces each reading
// on the hub.
type EnergyAggregator struct {
	cache    *cache.TelemetryCache
	energy   *usecases.EnergyUseCase
	hub      *ws.Hub
	interval time.Duration
	rate     float64 // cost per kWh
}

func NewEnergyAggregator(energy *usecases.EnergyUseCase, hub *ws.Hub) *EnergyAggregator {
	return &EnergyAggregator{
		cache:    cache.NewTelemetryCache(),
		energy:   energy,
		hub:      hub,
		interval: 5 * time.Minute,
		rate:     0.12,
	}
}

func (a *EnergyAggregator) Start() {
	ticker := time.NewTicker(a.interval)
	go func() {
		for range ticker.C {
			a.Flush()
		}
	}()
}

// AddPoint buffers one power sample. Samples from sensors without a
// building attribution are dropped; there is nothing to roll them up
// under.
func (a *EnergyAggregator) AddPoint(buildingName string, power float64) {
	if buildingName == "" {
		return
	}
	a.cache.AddPoint(buildingName, power)
}

// Flush converts the buffered samples into one reading per building.
// Average power over the interval approximates consumed energy.
func (a *EnergyAggregator) Flush() {
	for building, points := range a.cache.Drain() {
		if len(points) == 0 {
			continue
		}

		var sum float64
		for _, p := range points {
			sum += p.Power
		}
		avgPower := sum / float64(len(points))
		energyKwh := avgPower * a.interval.Hours()

		reading := entities.EnergyReading{
			BuildingName: building,
			EnergyKwh:    energyKwh,
			Cost:         energyKwh * a.rate,
		}
		if err := a.energy.CreateReading(&reading); err != nil {
			log.Printf("energy roll-up for %s failed: %v", building, err)
			continue
		}
		a.hub.Broadcast(ws.EventEnergyUpdate, reading)
		log.Printf("energy roll-up: %s %.3f kWh from %d samples", building, energyKwh, len(points))
	}
}

func (a *EnergyAggregator) Stats() map[string]any {
	return a.cache.Stats()
}
