package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/customer-crm/internal/config"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

// DefaultCategories are inserted into an empty categories table.
var DefaultCategories = []string{"Gold", "Silver", "Bronze"}

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DB)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger: gormlogger.New(
			zap.NewStdLog(log.Named("gorm")),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.DB.ConnMaxIdleTime)

	return db, nil
}

func dialectorFor(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.URL), nil
	case config.DriverSQLite:
		return sqlite.Open(withForeignKeys(cfg.URL)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// withForeignKeys turns on foreign key enforcement, which SQLite leaves
// off per connection by default.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// Migrate creates or updates the customer_categories, customers and
// contacts tables, in dependency order.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.CustomerCategory{},
		&models.Customer{},
		&models.Contact{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedCategories inserts DefaultCategories when no category exists yet.
// It returns how many rows were inserted.
func SeedCategories(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(&models.CustomerCategory{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	categories := make([]models.CustomerCategory, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories = append(categories, models.CustomerCategory{Name: name})
	}

	if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
		return 0, fmt.Errorf("seed categories: %w", err)
	}
	return len(categories), nil
}

// Prepare runs the startup steps enabled in cfg.
func Prepare(ctx context.Context, db *gorm.DB, cfg config.DBConfig, log *zap.Logger) error {
	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return err
		}
		log.Info("database migrated")
	}

	if cfg.Seed {
		n, err := SeedCategories(ctx, db)
		if err != nil {
			return err
		}
		if n > 0 {
			log.Info("categories seeded", zap.Int("count", n))
		}
	}
	return nil
}
