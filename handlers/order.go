package handlers

import (
	"net/http"

	"viaduct/models"
	"viaduct/services/registry"
	"viaduct/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler exposes the agency order feed endpoints.
type OrderHandler struct {
	Registry registry.OrderRegistry
}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler(reg registry.OrderRegistry) *OrderHandler {
	return &OrderHandler{Registry: reg}
}

// ListOrdersHandler handles GET /api/orders.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Registry.List())
}

// CreateOrderHandler handles POST /api/orders.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		logger.Error("Invalid create order request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Registry.Create(order)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateOrderHandler handles PUT /api/orders/:id.
func (h *OrderHandler) UpdateOrderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		logger.Error("Invalid update order request", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Registry.Update(id, order)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteOrderHandler handles DELETE /api/orders/:id.
func (h *OrderHandler) DeleteOrderHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Registry.Delete(id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
