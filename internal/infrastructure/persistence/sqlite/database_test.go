package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/novamoonx/demmi/internal/infrastructure/config"
	gormModels "github.com/novamoonx/demmi/internal/infrastructure/persistence/gorm"
)

func openTestDatabase(t *testing.T, cfg config.DatabaseConfig) *gorm.DB {
	t.Helper()
	db, err := SetupDatabase(cfg, gormLogger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestSetupDatabase_AppliesPoolSettings(t *testing.T) {
	db := openTestDatabase(t, config.DatabaseConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		AutoMigrate:  true,
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestSetupDatabase_SkipsMigrationWhenDisabled(t *testing.T) {
	db := openTestDatabase(t, config.DatabaseConfig{AutoMigrate: false})

	assert.False(t, db.Migrator().HasTable(&gormModels.MealModel{}))
}

func TestSeedDatabase_SecondRunIsNoOp(t *testing.T) {
	db := openTestDatabase(t, config.DatabaseConfig{MaxOpenConns: 1, AutoMigrate: true})
	ctx := context.Background()

	require.NoError(t, SeedDatabase(ctx, db))
	var first int64
	require.NoError(t, db.Model(&gormModels.MealModel{}).Count(&first).Error)

	require.NoError(t, SeedDatabase(ctx, db))
	var second int64
	require.NoError(t, db.Model(&gormModels.MealModel{}).Count(&second).Error)

	assert.Positive(t, first)
	assert.Equal(t, first, second)
}
