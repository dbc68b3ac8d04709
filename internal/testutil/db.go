// Package testutil provides in-memory storage for tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/customer-crm/internal/db"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

var nameCleaner = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// NewDB opens a migrated in-memory SQLite database private to t, with
// foreign keys enforced.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", nameCleaner.Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

// SeedCategories inserts the default categories and returns their ids by name.
func SeedCategories(t testing.TB, db *gorm.DB) map[string]uint {
	t.Helper()

	_, err := dbpkg.SeedCategories(context.Background(), db)
	require.NoError(t, err)

	var categories []models.CustomerCategory
	require.NoError(t, db.Find(&categories).Error)

	ids := make(map[string]uint, len(categories))
	for _, c := range categories {
		ids[c.Name] = c.ID
	}
	return ids
}
