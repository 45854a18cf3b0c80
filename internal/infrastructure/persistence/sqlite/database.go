// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"
	"strings"

	gormModels "github.com/pantryloom/v1/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use a shared in-memory database if no path provided, so that
	// every pooled connection sees the same data
	if dbPath == "" {
		dbPath = "file::memory:?cache=shared"
	}

	// Foreign keys are off by default in SQLite
	if strings.Contains(dbPath, "?") {
		dbPath += "&_foreign_keys=on"
	} else {
		dbPath += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	err = db.AutoMigrate(
		&gormModels.UnitModel{},
		&gormModels.IngredientModel{},
		&gormModels.PantryEntryModel{},
		&gormModels.RecipeModel{},
		&gormModels.RecipeIngredientModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// DefaultUnits is the unit catalog every fresh database starts with
var DefaultUnits = []string{
	"ml", "L", "tsp.", "tbsp.", "cup(s)", "fl oz",
	"pint(s)", "g", "lb", "oz", "clove(s)", "piece(s)",
}

// SeedDatabase populates the unit catalog with the default units
func SeedDatabase(db *gorm.DB) error {
	var unitCount int64
	db.Model(&gormModels.UnitModel{}).Count(&unitCount)
	if unitCount > 0 {
		return nil // Already seeded
	}

	for _, name := range DefaultUnits {
		if err := db.Create(&gormModels.UnitModel{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed unit %q: %w", name, err)
		}
	}

	return nil
}
