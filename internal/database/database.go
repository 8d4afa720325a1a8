package database

import (
	"fmt"
	"time"

	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// PoolConfig caps the connection pool. Requests beyond MaxOpenConns wait for
// a free connection.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens the Postgres connection, applies the pool limits, runs
// migrations and stores the handle in DB.
func Connect(dsn string, pool PoolConfig) error {
	db, err := Open(postgres.Open(dsn), pool)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logging.Info().Msg("Database connection established.")

	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logging.Info().Msg("Database migrated successfully.")

	DB = db
	return nil
}

// Open opens a gorm handle on any dialector with the shared settings.
func Open(dialector gorm.Dialector, pool PoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	return db, nil
}

// Migrate creates or updates the four tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.UserSettings{}, &models.Session{}, &models.Friendship{})
}

// Close releases the pool behind DB.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
