package routes

import (
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/config"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/handlers/subscriptions"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/middleware"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/models"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/payments"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SubscriptionsRoutes(r *gin.Engine, db *gorm.DB, gateway payments.Gateway, cfg config.Config) {
	handler := subscriptions.NewHandler(db, gateway, cfg.SubscriptionDedupePending)

	subscriptionsRoutes := r.Group("/subscriptions")
	subscriptionsRoutes.Use(middleware.JWTAuth())
	{
		subscriptionsRoutes.GET("/active", handler.GetActive)
		subscriptionsRoutes.GET("/history", handler.GetHistory)
		subscriptionsRoutes.POST("/:subscriptionId/check", handler.CheckPayment)
	}

	// Creation additionally requires the subscribe capability.
	r.POST("/subscriptions", middleware.RequireCan(models.ActionSubscribe), handler.Create)
}
