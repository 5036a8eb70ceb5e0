package models

import "time"

// HeroContent is a homepage banner slot.
type HeroContent struct {
	ContentID        int       `gorm:"primaryKey;column:content_id" json:"content_id"`
	Title            string    `gorm:"column:title" json:"title"`
	Description      *string   `gorm:"column:description" json:"description,omitempty"`
	AnimationData    *string   `gorm:"column:animation_data" json:"animation_data,omitempty"`
	IsActive         bool      `gorm:"column:is_active" json:"is_active"`
	CreatedDate      time.Time `gorm:"column:created_date" json:"created_date"`
	LastModifiedDate time.Time `gorm:"column:last_modified_date" json:"last_modified_date"`
}

func (HeroContent) TableName() string {
	return "hero_contents"
}
