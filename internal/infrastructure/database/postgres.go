package database

import (
	"fmt"

	"github.com/you/authsvc/internal/infrastructure/repositories"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Open creates a new database connection with production-ready settings
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "auth.",
		},
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates the user and role tables and seeds the reference
// roles. Role 1 is the reserved administrative role.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}, &repositories.DBRole{}); err != nil {
		return fmt.Errorf("failed to migrate auth tables: %w", err)
	}

	if err := repositories.SeedRoles(db); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	return nil
}
