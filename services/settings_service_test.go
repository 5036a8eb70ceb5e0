package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"christmas-gift-api/models"
)

func newSettingsFixture(t *testing.T) (*SettingsService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewSettingsService(db, NewReferenceCache(24*time.Hour)), db
}

func seedSetting(t *testing.T, db *gorm.DB, name, value string) {
	t.Helper()
	if err := db.Create(&models.Setting{Name: name, Value: &value}).Error; err != nil {
		t.Fatalf("failed to seed setting %q: %v", name, err)
	}
}

func TestGetByNameIsCaseAndWhitespaceInsensitive(t *testing.T) {
	svc, db := newSettingsFixture(t)
	seedSetting(t, db, "SignupDeadline", "2026-12-01")

	for _, name := range []string{"SignupDeadline", "signupdeadline", "  SIGNUPDEADLINE  "} {
		setting, err := svc.GetByName(name)
		if err != nil {
			t.Fatalf("GetByName(%q) returned error: %v", name, err)
		}
		if setting == nil {
			t.Fatalf("GetByName(%q) found nothing", name)
		}
		if setting.Name != "signupdeadline" {
			t.Fatalf("expected normalized name, got %q", setting.Name)
		}
		if setting.Value == nil || *setting.Value != "2026-12-01" {
			t.Fatalf("unexpected value %v", setting.Value)
		}
	}
}

func TestGetByNameMissingReturnsAbsent(t *testing.T) {
	svc, _ := newSettingsFixture(t)

	setting, err := svc.GetByName("no-such-setting")
	if err != nil {
		t.Fatalf("GetByName returned error: %v", err)
	}
	if setting != nil {
		t.Fatalf("expected absent result, got %+v", setting)
	}
}

func TestGetByNameMissIsNotCached(t *testing.T) {
	svc, db := newSettingsFixture(t)

	if setting, err := svc.GetByName("SignupDeadline"); err != nil || setting != nil {
		t.Fatalf("expected clean miss, got %v / %v", setting, err)
	}

	seedSetting(t, db, "SignupDeadline", "2026-12-01")

	setting, err := svc.GetByName("SignupDeadline")
	if err != nil {
		t.Fatalf("GetByName returned error: %v", err)
	}
	if setting == nil {
		t.Fatal("expected the setting to be visible once it exists")
	}
}

func TestGetByNameServesFromCache(t *testing.T) {
	svc, db := newSettingsFixture(t)
	seedSetting(t, db, "theme", "winter")

	if _, err := svc.GetByName("theme"); err != nil {
		t.Fatalf("GetByName returned error: %v", err)
	}

	// A direct storage change is invisible until the TTL runs out.
	if err := db.Model(&models.Setting{}).Where("name = ?", "theme").
		Update("value", "spring").Error; err != nil {
		t.Fatalf("failed to update setting: %v", err)
	}

	setting, err := svc.GetByName("theme")
	if err != nil {
		t.Fatalf("GetByName returned error: %v", err)
	}
	if setting.Value == nil || *setting.Value != "winter" {
		t.Fatalf("expected cached value winter, got %v", setting.Value)
	}
}

func TestGetAllNormalizesNames(t *testing.T) {
	svc, db := newSettingsFixture(t)
	seedSetting(t, db, "  SignupDeadline ", "2026-12-01")
	seedSetting(t, db, "Theme", "winter")

	settings, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(settings) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(settings))
	}
	for _, setting := range settings {
		if setting.Name != "signupdeadline" && setting.Name != "theme" {
			t.Fatalf("unexpected setting name %q", setting.Name)
		}
	}
}
