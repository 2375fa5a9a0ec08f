package stats

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/demowin23/vilaw-be/lifecycle"
	"github.com/demowin23/vilaw-be/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *sqlx.DB, cache *redis.Client) {
	service := NewService(db, cache)
	handler := NewHandler(service)

	routes := rg.Group("/stats", middleware.Auth(db), middleware.RequireRoles(lifecycle.RoleAdmin))
	{
		routes.GET("/overview", handler.Overview)
	}
}
