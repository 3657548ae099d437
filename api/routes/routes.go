package routes

import (
	"github.com/brandforge/demokit-backend/internal/config"
	"github.com/brandforge/demokit-backend/internal/handlers"
	"github.com/brandforge/demokit-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds the handlers the router wires up
type HandlerDependencies struct {
	DocumentHandler *handlers.DocumentHandler
	BrandHandler    *handlers.BrandHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	// Create router
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg))
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Configuration document routes
		document := api.Group("/document")
		{
			document.GET("", deps.DocumentHandler.GetDocument)
			document.PUT("", deps.DocumentHandler.ReplaceDocument)
			document.PUT("/guides/:id", deps.DocumentHandler.UpsertGuide)
			document.PUT("/messages/:id", deps.DocumentHandler.UpdateMessage)
			document.POST("/messages/:id", deps.DocumentHandler.UpdateMessage)
			document.GET("/messages/:id/html", deps.DocumentHandler.RenderMessage)
		}

		// Brand routes
		brands := api.Group("/brands")
		{
			brands.GET("", deps.BrandHandler.ListBrands)
			brands.POST("/sync", deps.BrandHandler.SyncBrand)
			brands.POST("/:brandCode/files", deps.BrandHandler.UploadBrandFile)
		}
	}

	return router
}
