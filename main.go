package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/config"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/db"
	_ "github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/docs"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/payments"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/routes"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/storage"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Lia Vasconcelos Platform API
// @version 1.0
// @description Subscription-gated photo and video gallery with PIX payments
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {
	gin.SetMode(gin.ReleaseMode)

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, relying on the system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading the configuration:", err)
	}

	database, err := db.Connect(cfg.DBUrl)
	if err != nil {
		log.Fatal("Error initializing the database:", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			utils.LogError(err, "Error closing the database")
		}
	}()

	gateway := buildGateway(cfg)
	store, err := buildStore(cfg)
	if err != nil {
		utils.LogError(err, "Object store initialization failed")
		log.Println("Content upload will not work correctly.")
	}

	r := routes.SetupRouter(database, gateway, store, cfg)

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}

// buildGateway selects the PIX gateway: Mercado Pago with a simulated
// fallback when an access token is configured, the simulated always-approve
// gateway otherwise.
func buildGateway(cfg config.Config) payments.Gateway {
	if cfg.MercadoPagoAccessToken == "" {
		utils.LogInfo("MERCADO_PAGO_ACCESS_TOKEN is not set, using the simulated PIX gateway")
		return payments.NewSimulated()
	}
	return payments.NewFallback(payments.NewMercadoPago(cfg.MercadoPagoBaseURL, cfg.MercadoPagoAccessToken))
}

func buildStore(cfg config.Config) (storage.ObjectStore, error) {
	switch cfg.StorageDriver {
	case "cloudinary":
		return storage.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	case "s3":
		return storage.NewS3Store(context.Background(), cfg.S3Region, cfg.S3Bucket)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
}
