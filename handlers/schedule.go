package handlers

import (
	"net/http"

	"viaduct/services/registry"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the occupancy table data.
type ScheduleHandler struct {
	Registry registry.ClientRegistry
}

// NewScheduleHandler creates a new ScheduleHandler instance.
func NewScheduleHandler(reg registry.ClientRegistry) *ScheduleHandler {
	return &ScheduleHandler{Registry: reg}
}

// GetScheduleHandler handles GET /api/schedule. Returns the rolling
// week window, clients with computed loads, per-week sums and the
// over-capacity week ids. ?q= narrows the client rows; sums always
// cover the full collection.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registry.Snapshot(c.Query("q")))
}
