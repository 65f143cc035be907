package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"violation-tracker/internal/config"
	"violation-tracker/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var retryDelay = 2 * time.Second

// Open connects to the configured database and runs migrations.
func Open(cfg *config.Config, log *zap.SugaredLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	maxAttempts := 1

	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBDSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DBDSN)
		// postgres usually starts next to us in compose, give it time
		maxAttempts = 10
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= maxAttempts; i++ {
		log.Infow("connecting to database", "driver", cfg.DBDriver, "attempt", i, "max_attempts", maxAttempts)

		db, err = gorm.Open(dialector, &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			break
		}

		log.Warnw("failed to connect to database", "err", err)
		if i < maxAttempts {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to %s after %d attempts: %w", cfg.DBDriver, maxAttempts, err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		if err := tuneSQLite(db); err != nil {
			return nil, err
		}
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Infow("database ready", "driver", cfg.DBDriver)
	return db, nil
}

// one connection keeps sqlite writers from tripping over "database is locked"
func tuneSQLite(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Violation{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedOfficer creates the configured default officer if the username is free.
// It is a no-op when either value is empty.
func SeedOfficer(ctx context.Context, users UserRepository, username, password string, log *zap.SugaredLogger) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := users.GetByUsername(ctx, username)
	if err == nil {
		// already there
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("check seed officer: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed officer password: %w", err)
	}

	if err := users.Create(ctx, &models.User{Username: username, PasswordHash: string(hash)}); err != nil {
		return fmt.Errorf("create seed officer: %w", err)
	}

	log.Infow("created default officer", "username", username)
	return nil
}
