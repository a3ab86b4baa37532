// Package dbtest opens an in-memory SQLite database with the production
// migrations applied, for repository tests.
package dbtest

import (
	"testing"

	"garments-api/internal/db"
	"garments-api/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()
	return OpenWithLogger(t, logger.Discard())
}

// OpenWithLogger is Open with statement logging sent to log.
func OpenWithLogger(t testing.TB, log logger.Logger) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), db.GormConfig(log))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	dir, err := db.FindMigrationsDir()
	if err != nil {
		t.Fatalf("find migrations: %v", err)
	}
	if _, err := db.MigrateDir(gormDB, dir); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gormDB
}
