package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/foodfight/backend/internal/service"
)

// HealthCheck returns the health status of the API and the loaded dataset
func HealthCheck(catalogService service.ICatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:  "healthy",
			Recipes: catalogService.Total(),
			Source:  catalogService.Source(),
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, catalogService service.ICatalogService, limit gin.HandlerFunc) {
	router.GET("/health", HealthCheck(catalogService))
	router.GET("/api/health", HealthCheck(catalogService))

	v1 := router.Group("/api/v1")
	NewCatalogHandler(catalogService).RegisterRoutes(v1, limit)
}
