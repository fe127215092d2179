package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/philjones21/MyHomePageApp/internal/domain"
)

// newTestDB opens an in-memory sqlite database limited to a single
// connection so every query sees the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&domain.User{}, &domain.PhotoAlbum{}, &domain.Photo{}, &domain.BlogEntry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
