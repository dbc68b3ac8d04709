package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-crm/internal/config"
	dbpkg "github.com/BruksfildServices01/customer-crm/internal/db"
	"github.com/BruksfildServices01/customer-crm/internal/models"
	"github.com/BruksfildServices01/customer-crm/internal/testutil"
)

func TestSeedCategoriesIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	n, err := dbpkg.SeedCategories(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, len(dbpkg.DefaultCategories), n)

	n, err = dbpkg.SeedCategories(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, n)

	var count int64
	require.NoError(t, db.Model(&models.CustomerCategory{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestSeedSkipsPopulatedTable(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&models.CustomerCategory{Name: "Platinum"}).Error)

	n, err := dbpkg.SeedCategories(context.Background(), db)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewDBAndPrepare(t *testing.T) {
	cfg := &config.Config{
		DB: config.DBConfig{
			Driver:       config.DriverSQLite,
			URL:          "file:" + filepath.Join(t.TempDir(), "crm.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			AutoMigrate:  true,
			Seed:         true,
		},
	}

	db, err := dbpkg.NewDB(cfg, zap.NewNop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Prepare(context.Background(), db, cfg.DB, zap.NewNop()))

	var categories []models.CustomerCategory
	require.NoError(t, db.Order("id").Find(&categories).Error)
	require.Len(t, categories, 3)
	assert.Equal(t, "Gold", categories[0].Name)

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestNewDBRejectsUnknownDriver(t *testing.T) {
	_, err := dbpkg.NewDB(&config.Config{DB: config.DBConfig{Driver: "oracle"}}, zap.NewNop())
	assert.Error(t, err)
}
