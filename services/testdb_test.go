package services

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"christmas-gift-api/models"
)

// newTestDB opens a throwaway SQLite database with the full schema. The
// services only go through GORM, so the tests exercise the same query paths
// MySQL sees in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gift.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
		// The zero-sentinel update path can write a status id with no
		// matching reference row; constraints would reject what MySQL in
		// production accepts.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.WishListSubmissionStatus{},
		&models.WishListSubmission{},
		&models.Setting{},
		&models.WishListItem{},
		&models.HeroContent{},
		&models.RecommendWishListItem{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func seedStatus(t *testing.T, db *gorm.DB, id int, name string, displayOrder int) {
	t.Helper()
	now := time.Now().UTC()
	status := models.WishListSubmissionStatus{
		StatusID:         id,
		StatusName:       name,
		DisplayOrder:     displayOrder,
		CreatedDate:      now,
		LastModifiedDate: now,
	}
	if err := db.Create(&status).Error; err != nil {
		t.Fatalf("failed to seed status %d: %v", id, err)
	}
}

func seedUser(t *testing.T, db *gorm.DB, user models.User) models.User {
	t.Helper()
	now := time.Now().UTC()
	if user.CreatedDate.IsZero() {
		user.CreatedDate = now
	}
	if user.LastModifiedDate.IsZero() {
		user.LastModifiedDate = now
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", user.Username, err)
	}
	return user
}

func strPtr(s string) *string { return &s }
