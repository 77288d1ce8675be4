package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/drs-net/billing-backend/internal/models"
)

// Migrate creates or updates the billing schema.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	entities := []any{
		&models.User{},
		&models.Plan{},
		&models.Voucher{},
		&models.Payment{},
	}
	if errMigrate := conn.AutoMigrate(entities...); errMigrate != nil {
		return fmt.Errorf("db: migrate: %w", errMigrate)
	}
	return nil
}
