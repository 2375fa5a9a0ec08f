package admin

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

	routes := rg.Group("/admin", middleware.Auth(db), middleware.RequireRoles(lifecycle.RoleAdmin))
	{
		routes.GET("/users", handler.ListUsers)
		routes.GET("/users/:id", handler.GetUser)
		routes.POST("/users", handler.CreateUser)
		routes.PUT("/users/:id", handler.UpdateUser)
		routes.DELETE("/users/:id", handler.DeleteUser)
		routes.PUT("/users/:id/change-role", handler.ChangeRole)

		routes.GET("/actions", handler.Actions)
	}
}
