package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"christmas-gift-api/config"
	"christmas-gift-api/models"
)

const (
	allSettingsCacheKey   = "settings:all"
	settingCacheKeyPrefix = "settings:name:"
)

// SettingView is the read-side projection of a settings row.
type SettingView struct {
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

// SettingsService serves read-only, cached lookups of the settings table.
// Names are normalized to lowercase with surrounding whitespace stripped;
// the same rule applies to cache keys, storage lookups and returned names.
type SettingsService struct {
	db    *gorm.DB
	cache *ReferenceCache
}

func NewSettingsService(db *gorm.DB, cache *ReferenceCache) *SettingsService {
	if db == nil {
		db = config.DB
	}
	return &SettingsService{db: db, cache: cache}
}

func normalizeSettingName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetAll returns every setting with normalized names, cached as one aggregate.
func (s *SettingsService) GetAll() ([]SettingView, error) {
	value, err := s.cache.GetOrLoad(allSettingsCacheKey, func() (interface{}, error) {
		var rows []models.Setting
		if err := s.db.Find(&rows).Error; err != nil {
			return nil, err
		}
		views := make([]SettingView, 0, len(rows))
		for _, row := range rows {
			views = append(views, SettingView{
				Name:  normalizeSettingName(row.Name),
				Value: row.Value,
			})
		}
		return views, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]SettingView), nil
}

// GetByName returns one setting, or (nil, nil) when no row matches. Lookup is
// case- and whitespace-insensitive.
func (s *SettingsService) GetByName(name string) (*SettingView, error) {
	normalized := normalizeSettingName(name)
	if normalized == "" {
		return nil, nil
	}

	value, err := s.cache.GetOrLoad(settingCacheKeyPrefix+normalized, func() (interface{}, error) {
		var row models.Setting
		err := s.db.Where("LOWER(TRIM(name)) = ?", normalized).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Absence is not cached; the row may be added before the TTL runs out.
			return (*SettingView)(nil), errSettingNotFound
		}
		if err != nil {
			return nil, err
		}
		return &SettingView{Name: normalized, Value: row.Value}, nil
	})
	if errors.Is(err, errSettingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value.(*SettingView), nil
}

var errSettingNotFound = errors.New("setting not found")
