package user

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, db *sqlx.DB) {
	repo := NewRepository(db)
	otp := NewOTPService(db)
	service := NewService(repo, otp)
	handler := NewHandler(service)

	routes := rg.Group("/auth")
	{
		routes.POST("/send-otp", handler.SendRegistrationOTP)
		routes.POST("/send-login-otp", handler.SendLoginOTP)
		routes.POST("/register", handler.Register)
		routes.POST("/login-otp", handler.LoginWithOTP)
		routes.POST("/login", handler.Login)
		routes.POST("/logout", middleware.Auth(db), handler.Logout)
		routes.GET("/me", middleware.Auth(db), handler.Me)
		routes.PUT("/profile", middleware.Auth(db), handler.UpdateProfile)
	}
}
