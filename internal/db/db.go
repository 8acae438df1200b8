package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobmatrix/internal/config"
	"jobmatrix/internal/model"
)

// Open returns a connected GORM DB instance for the configured driver.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return gormDB, nil
}

// Migrate creates or updates every table. On dialects with partial indexes
// it also guarantees at most one active recruiter per company.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	switch gormDB.Dialector.Name() {
	case "postgres", "sqlite":
		stmt := "CREATE UNIQUE INDEX IF NOT EXISTS idx_recruiters_one_active ON recruiters (company_id) WHERE is_active = true"
		if err := gormDB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create active recruiter index: %w", err)
		}
	}
	return nil
}

// Reset drops every table, children first.
func Reset(gormDB *gorm.DB) error {
	tables := model.All()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := gormDB.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
