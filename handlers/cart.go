package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caterly/services/cart"
)

// CartHandler serves the cart endpoints for both anonymous and authenticated
// buyers.
type CartHandler struct {
	Service cart.CartService
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Service: svc}
}

// GetCartHandler returns the owner's cart lines.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	owner := ownerFromContext(c)
	lines, err := h.Service.GetCart(c.Request.Context(), owner)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines, "count": len(lines)})
}

// AddToCartHandler adds or replaces one package configuration in the cart.
func (h *CartHandler) AddToCartHandler(c *gin.Context) {
	var input cart.AddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	owner := ownerFromContext(c)
	line, err := h.Service.AddToCart(c.Request.Context(), owner, input)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"line": line})
}

// UpdateCartLineHandler edits an existing line's guests, selection, add-ons
// or event details.
func (h *CartHandler) UpdateCartLineHandler(c *gin.Context) {
	var input cart.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	owner := ownerFromContext(c)
	line, err := h.Service.UpdateLine(c.Request.Context(), owner, c.Param("lineId"), input)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"line": line})
}

// RemoveCartLineHandler removes a line. Removing an unknown line succeeds.
func (h *CartHandler) RemoveCartLineHandler(c *gin.Context) {
	owner := ownerFromContext(c)
	if err := h.Service.RemoveLine(c.Request.Context(), owner, c.Param("lineId")); err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// MigrateCartHandler moves the device's anonymous cart into the signed-in
// user's remote cart. The auth flow calls this once after login; the
// operation is idempotent, so a retry is safe.
func (h *CartHandler) MigrateCartHandler(c *gin.Context) {
	userID := c.GetString("userID")
	deviceID := c.GetString("deviceID")

	report, err := h.Service.MigrateLocalCartToRemote(c.Request.Context(), deviceID, userID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	status := http.StatusOK
	if len(report.Failed) > 0 {
		// Partial success: migrated lines are remote, failed lines stayed
		// local for the next attempt.
		status = http.StatusMultiStatus
	}
	c.JSON(status, report)
}
