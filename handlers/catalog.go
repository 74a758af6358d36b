package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caterly/services/cart"
	"caterly/services/catalog"
	"caterly/services/pricing"
	"caterly/services/selection"
)

// CatalogHandler serves the package-browsing and selection/quote endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// GetPackageHandler returns one package by id.
func (h *CatalogHandler) GetPackageHandler(c *gin.Context) {
	pkg, err := h.Service.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GetPackageMenuHandler returns the package's items grouped per category with
// their pick limits, the view the package-detail screen renders.
func (h *CatalogHandler) GetPackageMenuHandler(c *gin.Context) {
	menu, err := h.Service.GetPackageMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GetCatererPackagesHandler lists a caterer's packages.
func (h *CatalogHandler) GetCatererPackagesHandler(c *gin.Context) {
	pkgs, err := h.Service.GetCatererPackages(c.Request.Context(), c.Param("catererId"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

// ValidateSelectionHandler replays the caller's current selection and applies
// one toggle, returning the resulting selection or the structured rejection.
func (h *CatalogHandler) ValidateSelectionHandler(c *gin.Context) {
	var input struct {
		Selected []string `json:"selected"`
		Toggle   string   `json:"toggle" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	pkg, err := h.Service.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	state, err := selection.NewStateWith(pkg, input.Selected)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := state.Toggle(input.Toggle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"result": result}
	if state.LimitsUnconfigured() {
		resp["warning"] = "selection limits are not configured for this package; all selections allowed"
	}
	c.JSON(http.StatusOK, resp)
}

// QuoteHandler prices a candidate configuration without touching the cart.
func (h *CatalogHandler) QuoteHandler(c *gin.Context) {
	var input struct {
		Guests   int               `json:"guests" binding:"required"`
		Selected []string          `json:"selected"`
		AddOns   []cart.AddOnInput `json:"add_ons"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	pkg, err := h.Service.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	selected, rejection, err := selection.ValidateSet(pkg, input.Selected)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if rejection != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "selection rejected", "rejection": rejection})
		return
	}

	addOns, err := cart.ResolveAddOns(pkg, input.AddOns)
	if err != nil {
		respondCartError(c, err)
		return
	}

	total, err := pricing.ComputeLineTotal(pkg, input.Guests, addOns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"package_id":       pkg.ID,
		"guests":           input.Guests,
		"selected":         selected,
		"price_per_person": pkg.PricePerPerson(),
		"total":            total,
		"currency":         pkg.Currency,
	})
}
