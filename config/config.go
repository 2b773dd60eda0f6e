package config

import (
	"github.com/spf13/viper"
)

// Config holds every setting the application reads from the environment.
// It is loaded once in main and handed to the components that need it.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	DBUrl      string `mapstructure:"DB_URL"`
	JWTSecret  string `mapstructure:"JWT_SECRET"`

	// Registration with this email is promoted to the admin role.
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`

	// PIX gateway. When the access token is empty the simulated
	// always-approve gateway is used instead of Mercado Pago.
	MercadoPagoAccessToken string `mapstructure:"MERCADO_PAGO_ACCESS_TOKEN"`
	MercadoPagoBaseURL     string `mapstructure:"MERCADO_PAGO_BASE_URL"`

	// Object store backend: "s3" or "cloudinary".
	StorageDriver        string `mapstructure:"STORAGE_DRIVER"`
	S3Region             string `mapstructure:"S3_REGION"`
	S3Bucket             string `mapstructure:"S3_BUCKET"`
	CloudinaryCloudName  string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey     string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret  string `mapstructure:"CLOUDINARY_API_SECRET"`

	// When true, a create-subscription call that finds an existing pending
	// subscription for the user returns its pending payment instead of
	// inserting a duplicate pair.
	SubscriptionDedupePending bool `mapstructure:"SUBSCRIPTION_DEDUPE_PENDING"`
}

// Load reads the configuration from environment variables.
func Load() (config Config, err error) {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MERCADO_PAGO_BASE_URL", "https://api.mercadopago.com")
	viper.SetDefault("STORAGE_DRIVER", "s3")
	viper.SetDefault("SUBSCRIPTION_DEDUPE_PENDING", false)
	viper.AutomaticEnv()

	// Bind explicitly so the variables appear in Unmarshal even when unset.
	for _, key := range []string{
		"SERVER_PORT", "DB_URL", "JWT_SECRET", "ADMIN_EMAIL",
		"MERCADO_PAGO_ACCESS_TOKEN", "MERCADO_PAGO_BASE_URL",
		"STORAGE_DRIVER", "S3_REGION", "S3_BUCKET",
		"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET",
		"SUBSCRIPTION_DEDUPE_PENDING",
	} {
		_ = viper.BindEnv(key)
	}

	err = viper.Unmarshal(&config)
	return
}
