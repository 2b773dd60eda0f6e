package routes

import (
	"time"

	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/config"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/payments"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, gateway payments.Gateway, store storage.ObjectStore, cfg config.Config) *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	AuthRoutes(r, db, cfg)
	SubscriptionsRoutes(r, db, gateway, cfg)
	ContentRoutes(r, db, store)

	return r
}
