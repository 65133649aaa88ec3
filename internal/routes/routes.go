package routes

import (
	"parttime_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts the full API surface under /api/v1 plus the
// swagger UI and a health probe.
func RegisterRoutes(engine *gin.Engine, h *handlers.AppHandlers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := engine.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(v1)
		h.User.RegisterRoutes(v1)
		h.Job.RegisterRoutes(v1)
		h.Application.RegisterRoutes(v1)
	}
}
