package routes

import (
	"net/http"
	"time"

	"caterly/handlers"
	"caterly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers package browsing, selection validation and
// quoting. All of it is public storefront surface.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/packages/:id", hb.Catalog.GetPackageHandler)
		api.GET("/packages/:id/menu", hb.Catalog.GetPackageMenuHandler)
		api.GET("/caterers/:catererId/packages", hb.Catalog.GetCatererPackagesHandler)
		api.POST("/packages/:id/selection", hb.Catalog.ValidateSelectionHandler)
		api.POST("/packages/:id/quote", hb.Catalog.QuoteHandler)
	}
}

// RegisterCartRoutes sets up the cart endpoints. Every cart route carries the
// device identity; authentication is optional so the same endpoints serve
// guests and signed-in buyers. Migration alone requires a signed-in user.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.DeviceMiddleware())
		api.Use(middleware.JWTAuthUserMiddleware(true))
		api.GET("", hb.Cart.GetCartHandler)
		api.POST("/lines", hb.Cart.AddToCartHandler)
		api.PATCH("/lines/:lineId", hb.Cart.UpdateCartLineHandler)
		api.DELETE("/lines/:lineId", hb.Cart.RemoveCartLineHandler)

		api.POST("/migrate", middleware.JWTAuthUserMiddleware(false), hb.Cart.MigrateCartHandler)
	}
}

// RegisterOrderRoutes sets up checkout and order lookup.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.JWTAuthUserMiddleware(false))
		api.POST("", hb.Order.CreateOrderHandler)
		api.GET("", hb.Order.GetUserOrdersHandler)
		api.GET("/:id", hb.Order.GetOrderHandler)
	}
}

// RegisterAdminRoutes sets up the catalog-management endpoints for caterer
// tooling.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("/packages", hb.Admin.UpsertPackagesHandler)
		api.DELETE("/packages/:id", hb.Admin.DeletePackageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Caterly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
