package chat

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *sqlx.DB) {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	routes := rg.Group("/chat", middleware.Auth(db))
	{
		routes.GET("/conversations", handler.Conversations)
		routes.GET("/all-conversations", handler.AllConversations)
		routes.POST("/conversations", handler.CreateConversation)
		routes.GET("/conversations/:conversationId/messages", handler.Messages)
		routes.GET("/conversations/:conversationId/detail", handler.ConversationDetail)
		routes.POST("/conversations/:conversationId/messages", handler.SendMessage)
		routes.PUT("/conversations/:conversationId/read", handler.MarkAsRead)

		routes.GET("/lawyers", handler.AvailableLawyers)
		routes.PUT("/online-status", handler.UpdateOnlineStatus)

		routes.GET("/stats", handler.Stats)
		routes.GET("/detailed-stats", handler.DetailedStats)
	}
}
