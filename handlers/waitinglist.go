package handlers

import (
	"net/http"

	"viaduct/models"
	"viaduct/services/registry"
	"viaduct/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WaitingListHandler exposes the waiting-list endpoints.
type WaitingListHandler struct {
	Registry registry.WaitingListRegistry
}

// NewWaitingListHandler creates a new WaitingListHandler instance.
func NewWaitingListHandler(reg registry.WaitingListRegistry) *WaitingListHandler {
	return &WaitingListHandler{Registry: reg}
}

// ListWaitingListHandler handles GET /api/waiting-list.
func (h *WaitingListHandler) ListWaitingListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registry.List())
}

// AddWaitingListHandler handles POST /api/waiting-list.
func (h *WaitingListHandler) AddWaitingListHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var entry models.WaitingListEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		logger.Error("Invalid waiting list request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.Registry.Add(entry)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, added)
}

// DeleteWaitingListHandler handles DELETE /api/waiting-list/:id.
func (h *WaitingListHandler) DeleteWaitingListHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Registry.Delete(id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
