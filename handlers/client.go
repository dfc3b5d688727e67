package handlers

import (
	"net/http"

	"viaduct/models"
	"viaduct/services/registry"
	"viaduct/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes the booking CRUD endpoints.
type ClientHandler struct {
	Registry registry.ClientRegistry
}

// NewClientHandler creates a new ClientHandler instance.
func NewClientHandler(reg registry.ClientRegistry) *ClientHandler {
	return &ClientHandler{Registry: reg}
}

// ListClientsHandler handles GET /api/clients. Clients carry computed
// week loads and warning flags; ?q= narrows by name or order number.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	snap := h.Registry.Snapshot(c.Query("q"))
	c.JSON(http.StatusOK, snap.Clients)
}

// GetClientHandler handles GET /api/clients/:id.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	id := c.Param("id")
	client, ok := h.Registry.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// AddClientHandler handles POST /api/clients.
func (h *ClientHandler) AddClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var form models.ClientForm
	if err := c.ShouldBindJSON(&form); err != nil {
		logger.Error("Invalid add client request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.Registry.Add(form)
	if err != nil {
		logger.Warn("Add client rejected", zap.String("name", form.Name), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClientHandler handles PATCH /api/clients/:id with a partial
// field set; omitted fields are left unchanged.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var upd models.ClientUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		logger.Error("Invalid update client request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.Registry.Update(id, upd)
	if err != nil {
		logger.Error("Update client failed", zap.String("id", id), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClientHandler handles DELETE /api/clients/:id. Reminder
// deletion cascades inside the registry.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Registry.Delete(id); err != nil {
		logger.Error("Delete client failed", zap.String("id", id), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
