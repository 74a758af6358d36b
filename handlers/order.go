package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"caterly/services/order"
)

// OrderHandler serves checkout and order lookup.
type OrderHandler struct {
	Service order.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc order.OrderService) *OrderHandler {
	return &OrderHandler{Service: svc}
}

// CreateOrderHandler converts the named cart lines into an order.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	var input struct {
		CartLineIDs []string `json:"cart_line_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString("userID")
	created, err := h.Service.CreateOrder(c.Request.Context(), userID, input.CartLineIDs)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": created})
}

// GetOrderHandler returns one order by id, scoped to the caller.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	ord, err := h.Service.GetOrder(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if ord.UserID != c.GetString("userID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": ord})
}

// GetUserOrdersHandler lists the caller's orders.
func (h *OrderHandler) GetUserOrdersHandler(c *gin.Context) {
	orders, err := h.Service.GetUserOrders(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
