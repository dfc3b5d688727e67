package handlers

import (
	"net/http"

	"viaduct/models"
	"viaduct/services/registry"
	"viaduct/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes the reminder endpoints.
type ReminderHandler struct {
	Reminders registry.ReminderRegistry
	Clients   registry.ClientRegistry
}

// NewReminderHandler creates a new ReminderHandler instance.
func NewReminderHandler(reminders registry.ReminderRegistry, clients registry.ClientRegistry) *ReminderHandler {
	return &ReminderHandler{Reminders: reminders, Clients: clients}
}

// ListRemindersHandler handles GET /api/reminders.
func (h *ReminderHandler) ListRemindersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Reminders.List())
}

// DueRemindersHandler handles GET /api/reminders/due — the popup feed.
func (h *ReminderHandler) DueRemindersHandler(c *gin.Context) {
	due := h.Reminders.Due()
	if due == nil {
		due = []models.Reminder{}
	}
	c.JSON(http.StatusOK, due)
}

// SaveReminderHandler handles PUT /api/clients/:id/reminder. An empty
// remindAt clears the client's reminder.
func (h *ReminderHandler) SaveReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	clientID := c.Param("id")

	if _, ok := h.Clients.Get(clientID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}

	var req struct {
		RemindAt string `json:"remindAt"`
		Message  string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid save reminder request", zap.String("clientId", clientID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.Reminders.Save(clientID, req.RemindAt, req.Message)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	if reminder == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Reminder cleared"})
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// MarkReminderShownHandler handles POST /api/reminders/:id/shown and
// reports whether this was the first display today.
func (h *ReminderHandler) MarkReminderShownHandler(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"firstToday": h.Reminders.MarkShown(id)})
}
