package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/internal/api"
	"github.com/pageza/foodfight/backend/internal/middleware"
	"github.com/pageza/foodfight/backend/internal/service"
)

// SetupRouter configures the application routes. limiter may be nil when
// Redis is not configured.
func SetupRouter(
	catalogService service.ICatalogService,
	corsOrigins []string,
	limiter *middleware.RateLimiter,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
		middleware.CORS(corsOrigins),
	)
	router.NoRoute(middleware.NotFound())

	var limit gin.HandlerFunc
	if limiter != nil {
		limit = limiter.RateLimitMiddleware()
	}
	api.RegisterRoutes(router, catalogService, limit)

	return router
}
