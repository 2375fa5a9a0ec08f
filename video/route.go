package video

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *sqlx.DB) {
	repo := NewRepository(db)
	comments := NewCommentRepository(db)
	service := NewService(repo, comments)
	handler := NewHandler(service)

	routes := rg.Group("/video-life-law")
	{
		routes.GET("", middleware.OptionalAuth(db), handler.List)
		routes.GET("/types", handler.Types)
		routes.GET("/age-groups", handler.AgeGroups)
		routes.GET("/hashtags/popular", handler.PopularHashtags)
		routes.GET("/most-viewed", handler.MostViewed)
		routes.GET("/most-liked", handler.MostLiked)
		routes.GET("/:id", middleware.OptionalAuth(db), handler.GetByID)
		routes.GET("/:id/comments", middleware.OptionalAuth(db), handler.Comments)

		routes.POST("", middleware.Auth(db), handler.Create)
		routes.PUT("/:id", middleware.Auth(db), handler.Update)
		routes.DELETE("/:id", middleware.Auth(db), handler.Delete)

		routes.POST("/:id/like", middleware.Auth(db), handler.ToggleLike)
		routes.POST("/:id/comments", middleware.Auth(db), handler.AddComment)
		routes.POST("/comments/:commentId/like", middleware.Auth(db), handler.ToggleCommentLike)
		routes.DELETE("/comments/:commentId", middleware.Auth(db), handler.DeleteComment)

		routes.GET("/admin/pending", middleware.Auth(db), handler.Pending)
		routes.PUT("/admin/:id/approve", middleware.Auth(db), handler.Approve)
	}
}
