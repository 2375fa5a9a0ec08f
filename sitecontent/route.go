package sitecontent

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

	adminOnly := middleware.RequireRoles(lifecycle.RoleAdmin)

	routes := rg.Group("/site-content")
	{
		routes.GET("", handler.GetAll)
		routes.GET("/:key", handler.GetByKey)

		routes.PUT("/about", middleware.Auth(db), adminOnly, handler.UpdateAbout)
		routes.PUT("/contact", middleware.Auth(db), adminOnly, handler.UpdateContact)
	}
}
