package field

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *sqlx.DB) {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	editors := middleware.RequireRoles(lifecycle.RoleAdmin, lifecycle.RoleLawyer)

	routes := rg.Group("/legal-fields")
	{
		routes.GET("", middleware.OptionalAuth(db), handler.List)
		routes.GET("/dropdown", handler.Dropdown)
		routes.GET("/slug/:slug", handler.GetBySlug)
		routes.GET("/:id", handler.GetByID)

		routes.POST("", middleware.Auth(db), editors, handler.Create)
		routes.PUT("/:id", middleware.Auth(db), editors, handler.Update)
		routes.DELETE("/:id", middleware.Auth(db), editors, handler.Delete)
		routes.DELETE("/:id/permanent", middleware.Auth(db), handler.DeletePermanent)

		routes.GET("/admin/pending", middleware.Auth(db), handler.Pending)
		routes.PUT("/admin/:id/approve", middleware.Auth(db), handler.Approve)
	}
}
