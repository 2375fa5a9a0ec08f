package upload

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *sqlx.DB) {
	handler := NewHandler()

	routes := rg.Group("/upload")
	routes.Use(middleware.Auth(db))
	{
		routes.POST("/image", handler.UploadImage)
		routes.POST("/video", handler.UploadVideo)
	}
}
