package knowledge

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/category"
	"github.com/demowin23/vilaw-be/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *sqlx.DB) {
	repo := NewRepository(db)
	service := NewService(repo, category.NewRepository(db))
	handler := NewHandler(service)

	routes := rg.Group("/legal-knowledge")
	{
		routes.GET("", middleware.OptionalAuth(db), handler.List)
		routes.GET("/featured", handler.Featured)
		routes.GET("/categories", handler.Categories)
		routes.GET("/:id", handler.GetByID)

		routes.POST("", middleware.Auth(db), handler.Create)
		routes.PUT("/:id", middleware.Auth(db), handler.Update)
		routes.DELETE("/:id", middleware.Auth(db), handler.Delete)

		routes.GET("/admin/pending", middleware.Auth(db), handler.Pending)
		routes.PUT("/admin/:id/approve", middleware.Auth(db), handler.Approve)
	}
}
