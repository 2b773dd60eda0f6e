package db

import (
	"fmt"

	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/models"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs the migrations. The handle
// is returned to the caller and injected into the handlers; there is no
// package-level database global.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		return nil, err
	}

	err = database.AutoMigrate(
		&models.User{},
		&models.Subscription{},
		&models.Payment{},
		&models.Content{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		return nil, err
	}

	utils.LogSuccess("Database connection successful")
	return database, nil
}

// Close releases the underlying connection pool.
func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
