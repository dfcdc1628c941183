// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/novamoonx/demmi/internal/infrastructure/config"
	gormModels "github.com/novamoonx/demmi/internal/infrastructure/persistence/gorm"
	"github.com/novamoonx/demmi/internal/infrastructure/persistence/seed"
)

// SetupDatabase opens (or creates) the SQLite database, applies the
// connection pool settings and, when enabled, runs auto-migration for
// every persisted model.
func SetupDatabase(cfg config.DatabaseConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	dbPath := cfg.Path
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.AutoMigrate {
		err = db.AutoMigrate(
			&gormModels.UserModel{},
			&gormModels.MealModel{},
			&gormModels.MealPlanModel{},
			&gormModels.IngredientModel{},
			&gormModels.ConversationModel{},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return db, nil
}

// SeedDatabase populates the database with demo content on first run.
// A database that already holds meals is left untouched.
func SeedDatabase(ctx context.Context, db *gorm.DB) error {
	var mealCount int64
	if err := db.Model(&gormModels.MealModel{}).Count(&mealCount).Error; err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if mealCount > 0 {
		return nil // Already seeded
	}

	return seed.Demo(ctx,
		gormModels.NewMealRepository(db),
		gormModels.NewMealPlanRepository(db),
		gormModels.NewIngredientRepository(db),
		gormModels.NewConversationRepository(db),
	)
}
