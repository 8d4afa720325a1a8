// Package dbtest provides an in-memory store for tests.
package dbtest

import (
	"testing"

	"furls/dashboard/internal/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// New returns a migrated in-memory SQLite database. The pool holds exactly one
// connection: the in-memory database lives as long as that connection, and
// concurrent callers queue on it.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), database.PoolConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Use installs a fresh test database as database.DB for the duration of the test.
func Use(t testing.TB) *gorm.DB {
	t.Helper()
	db := New(t)
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}
