package handlers

import (
	"net/http"

	"smartcampus-server/services"

	"github.com/gin-gonic/gin"
)

type AggregateHandler struct {
	aggregator *services.EnergyAggregator
}

func NewAggregateHandler(aggregator *services.EnergyAggregator) *AggregateHandler {
	return &AggregateHandler{aggregator: aggregator}
}

// ProcessNow POST /api/energy/process forces a roll-up outside the
// regular interval.
func (h *AggregateHandler) ProcessNow(c *gin.Context) {
	h.aggregator.Flush()
	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}

// GetStats GET /api/energy/cache/stats
func (h *AggregateHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.aggregator.Stats(),
	})
}
