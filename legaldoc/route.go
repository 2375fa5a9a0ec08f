package legaldoc

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/demowin23/vilaw-be/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *sqlx.DB, cache *redis.Client) *Service {
	repo := NewRepository(db)
	service := NewService(repo, cache)
	handler := NewHandler(service)

	routes := rg.Group("/legal-documents")
	{
		routes.GET("", middleware.OptionalAuth(db), handler.List)
		routes.GET("/popular", handler.Popular)
		routes.GET("/types", handler.Types)
		routes.GET("/statuses", handler.Statuses)
		routes.GET("/view/:token", handler.ViewDocument)
		routes.GET("/:id", handler.GetByID)
		routes.GET("/:id/download", handler.Download)
		routes.POST("/:id/view-url", middleware.Auth(db), handler.GenerateViewURL)

		routes.POST("", middleware.Auth(db), handler.Create)
		routes.PUT("/:id", middleware.Auth(db), handler.Update)
		routes.DELETE("/:id", middleware.Auth(db), handler.Delete)

		routes.GET("/admin/pending", middleware.Auth(db), handler.Pending)
		routes.PUT("/admin/:id/approve", middleware.Auth(db), handler.Approve)
	}

	return service
}
