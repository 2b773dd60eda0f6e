package routes

import (
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/handlers/content"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/middleware"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/models"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ContentRoutes(r *gin.Engine, db *gorm.DB, store storage.ObjectStore) {
	handler := content.NewHandler(db, store)

	// Public routes; the list gates rows on the caller's subscription.
	r.GET("/content", middleware.OptionalJWTAuth(), handler.List)
	r.GET("/content/stats", handler.Stats)

	// Admin mutations.
	r.POST("/content", middleware.RequireCan(models.ActionUploadContent), handler.Upload)
	r.DELETE("/content/:id", middleware.RequireCan(models.ActionDeleteContent), handler.Delete)
}
