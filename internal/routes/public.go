package routes

import (
	"net/http"

	"jobtracker_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterPublicRoutes mounts the unauthenticated health check.
func RegisterPublicRoutes(r *gin.Engine, appHandlers *handlers.AppHandlers) {
	r.GET("/health", appHandlers.HealthHandler.Health)
	r.GET(APIPrefix+"/health", appHandlers.HealthHandler.Health)
}

// RegisterMetricsRoute exposes Prometheus metrics at /metrics.
func RegisterMetricsRoute(r *gin.Engine, h http.Handler) {
	r.GET("/metrics", gin.WrapH(h))
}

// RegisterSwaggerRoutes serves the generated API docs.
func RegisterSwaggerRoutes(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
