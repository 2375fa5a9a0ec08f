package news

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *sqlx.DB) {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	routes := rg.Group("/legal-news")
	{
		routes.GET("", middleware.OptionalAuth(db), handler.List)
		routes.GET("/recent", handler.Recent)
		routes.GET("/popular", handler.Popular)
		routes.GET("/:id", handler.GetByID)

		routes.POST("", middleware.Auth(db), handler.Create)
		routes.PUT("/:id", middleware.Auth(db), handler.Update)
		routes.DELETE("/:id", middleware.Auth(db), handler.Delete)

		routes.GET("/admin/pending", middleware.Auth(db), handler.Pending)
		routes.PUT("/admin/:id/approve", middleware.Auth(db), handler.Approve)
	}
}
