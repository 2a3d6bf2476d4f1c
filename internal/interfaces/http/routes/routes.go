// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/interfaces/http/handlers"
	"github.com/your-org/florist-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every API route group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	SetupAuthRoutes(rg, db, cfg)
	SetupCatalogRoutes(rg, db, cfg)
	SetupCartRoutes(rg, db, redisClient, cfg)
	SetupCheckoutRoutes(rg, db, redisClient, cfg)
	SetupSettingsRoutes(rg, db, cfg)
	SetupAdminRoutes(rg, db, cfg)
}

// SetupAuthRoutes sets up admin authentication routes
func SetupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/me", authHandler.Me)
		}
	}
}

// SetupCatalogRoutes sets up the public catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)
	tagHandler := handlers.NewTagHandler(db, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/slug/:slug", productHandler.GetProductBySlug)
	}

	rg.GET("/tags", tagHandler.GetTags)
}

// SetupCartRoutes sets up the guest cart routes. The cart is keyed by a
// session cookie, no authentication involved.
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateQuantity)
		cart.PUT("/items/:id/text", cartHandler.UpdateText)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up the checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(db, redisClient, cfg)

	checkout := rg.Group("/checkout")
	{
		checkout.POST("", checkoutHandler.Checkout)
		checkout.POST("/validate-schedule", checkoutHandler.ValidateSchedule)
		checkout.POST("/receipt", checkoutHandler.Receipt)
	}
}

// SetupSettingsRoutes sets up the public settings routes used by the
// storefront's date/time picker
func SetupSettingsRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	settingsHandler := handlers.NewSettingsHandler(db, cfg)

	settings := rg.Group("/settings")
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.GET("/availability", settingsHandler.CheckAvailability)
	}
}

// SetupAdminRoutes sets up admin panel routes
func SetupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)
	tagHandler := handlers.NewTagHandler(db, cfg)
	settingsHandler := handlers.NewSettingsHandler(db, cfg)
	uploadHandler := handlers.NewUploadHandler(db, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg)) // Require authentication
	admin.Use(middleware.AdminMiddleware())   // Require admin privileges
	{
		// Product management
		products := admin.Group("/products")
		{
			products.GET("", productHandler.AdminGetProducts)
			products.GET("/:id", productHandler.AdminGetProduct)
			products.POST("", productHandler.AdminCreateProduct)
			products.PUT("/:id", productHandler.AdminUpdateProduct)
			products.DELETE("/:id", productHandler.AdminDeleteProduct)
			products.POST("/:id/images", uploadHandler.UploadProductImage)
			products.DELETE("/:id/images/:imageId", productHandler.AdminDeleteImage)
		}

		// Tag management
		tags := admin.Group("/tags")
		{
			tags.GET("", tagHandler.AdminGetTags)
			tags.POST("", tagHandler.AdminCreateTag)
			tags.DELETE("/:id", tagHandler.AdminDeleteTag)
		}

		// Store settings
		settings := admin.Group("/settings")
		{
			settings.PUT("", settingsHandler.AdminUpdateSettings)
			settings.POST("/import-legacy", settingsHandler.AdminImportLegacySettings)
		}
	}
}
