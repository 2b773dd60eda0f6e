package routes

import (
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/config"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/handlers/auth"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	handler := auth.NewHandler(db, cfg.AdminEmail)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", handler.Register)
		authRoutes.POST("/login", handler.Login)
		authRoutes.POST("/logout", handler.Logout)
		authRoutes.GET("/me", middleware.JWTAuth(), handler.Me)
	}
}
