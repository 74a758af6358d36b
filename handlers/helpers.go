package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"caterly/models"
	"caterly/services/cart"
	"caterly/services/catalog"
)

// ownerFromContext builds the explicit cart owner from what the middleware
// established: a verified user id when authenticated, the device id
// otherwise.
func ownerFromContext(c *gin.Context) models.CartOwner {
	owner := models.CartOwner{}
	if userID, ok := c.Get("userID"); ok {
		if id, ok := userID.(string); ok && id != "" {
			owner.UserID = id
			owner.Authenticated = true
			return owner
		}
	}
	if deviceID, ok := c.Get("deviceID"); ok {
		if id, ok := deviceID.(string); ok {
			owner.DeviceID = id
		}
	}
	return owner
}

// respondCartError maps cart service errors onto HTTP responses. Selection
// rejections are not failures; they carry the category and limit so the
// storefront can explain the refusal.
func respondCartError(c *gin.Context, err error) {
	var vErr *cart.ValidationError
	var rejErr *cart.SelectionRejectedError
	var nfErr *cart.NotFoundError
	var supErr *cart.SupersededError
	var pErr *cart.PersistenceError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &rejErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "selection rejected",
			"rejection": rejErr.Rejection,
		})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
	case errors.As(err, &supErr):
		c.JSON(http.StatusConflict, gin.H{"error": supErr.Error(), "superseded": true})
	case errors.As(err, &pErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart store unavailable", "details": pErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// respondCatalogError maps catalog lookups onto HTTP responses.
func respondCatalogError(c *gin.Context, err error) {
	var vErr *catalog.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
