package cache

import (
	"sync"
	"time"
)

// PowerPoint is one observed power sample attributed to a building.
type PowerPoint struct {
	Power float64
	At    time.Time
}

// TelemetryCache buffers per-building power samples between roll-up
// runs.
type TelemetryCache struct {
	mu     sync.RWMutex
	points map[string][]PowerPoint // buildingName -> samples
}

func NewTelemetryCache() *TelemetryCache {
	return &TelemetryCache{points: make(map[string][]PowerPoint)}
}

// AddPoint records one power sample for a building.
func (tc *TelemetryCache) AddPoint(buildingName string, power float64) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.points[buildingName] = append(tc.points[buildingName], PowerPoint{
		Power: power,
		At:    time.Now(),
	})
}

// Drain returns all buffered samples and resets the cache.
func (tc *TelemetryCache) Drain() map[string][]PowerPoint {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	drained := tc.points
	tc.points = make(map[string][]PowerPoint)
	return drained
}

// Stats summarizes the current buffer.
func (tc *TelemetryCache) Stats() map[string]any {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	totalPoints := 0
	for _, points := range tc.points {
		totalPoints += len(points)
	}
	return map[string]any{
		"total_buildings":   len(tc.points),
		"total_data_points": totalPoints,
	}
}
