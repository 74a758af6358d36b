package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"caterly/services/catalog"
)

// AdminHandler serves the catalog-management endpoints used by caterer
// tooling. This is the only surface that accepts the loose legacy payload
// shapes; everything is normalized on the way in.
type AdminHandler struct {
	Catalog catalog.CatalogService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(cat catalog.CatalogService) *AdminHandler {
	return &AdminHandler{Catalog: cat}
}

// UpsertPackagesHandler ingests one package or a batch, normalizing policy
// spellings and envelope shapes at this boundary.
func (h *AdminHandler) UpsertPackagesHandler(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	pkgs, err := h.Catalog.IngestPackages(c.Request.Context(), payload)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

// DeletePackageHandler removes a package from the catalog.
func (h *AdminHandler) DeletePackageHandler(c *gin.Context) {
	err := h.Catalog.DeletePackage(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
