package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "https://api.mercadopago.com", cfg.MercadoPagoBaseURL)
	assert.Equal(t, "s3", cfg.StorageDriver)
	assert.False(t, cfg.SubscriptionDedupePending)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", "admin@test.com")
	t.Setenv("MERCADO_PAGO_ACCESS_TOKEN", "APP_USR-token")
	t.Setenv("STORAGE_DRIVER", "cloudinary")
	t.Setenv("SUBSCRIPTION_DEDUPE_PENDING", "true")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "postgres://localhost/test", cfg.DBUrl)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "admin@test.com", cfg.AdminEmail)
	assert.Equal(t, "APP_USR-token", cfg.MercadoPagoAccessToken)
	assert.Equal(t, "cloudinary", cfg.StorageDriver)
	assert.True(t, cfg.SubscriptionDedupePending)
}
