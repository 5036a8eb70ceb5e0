package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"christmas-gift-api/config"
	"christmas-gift-api/models"
)

type CreateHeroContentInput struct {
	Title         string  `json:"title" binding:"required"`
	Description   *string `json:"description"`
	AnimationData *string `json:"animation_data"`
	IsActive      bool    `json:"is_active"`
}

type UpdateHeroContentInput struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	AnimationData *string `json:"animation_data"`
	IsActive      *bool   `json:"is_active"`
}

type HeroContentService struct {
	db *gorm.DB
}

func NewHeroContentService(db *gorm.DB) *HeroContentService {
	if db == nil {
		db = config.DB
	}
	return &HeroContentService{db: db}
}

func (s *HeroContentService) List() ([]models.HeroContent, error) {
	var contents []models.HeroContent
	if err := s.db.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (s *HeroContentService) GetByID(id int) (*models.HeroContent, error) {
	var content models.HeroContent
	err := s.db.Where("content_id = ?", id).First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *HeroContentService) Create(input CreateHeroContentInput) (*models.HeroContent, error) {
	now := time.Now().UTC()
	content := models.HeroContent{
		Title:            input.Title,
		Description:      input.Description,
		AnimationData:    input.AnimationData,
		IsActive:         input.IsActive,
		CreatedDate:      now,
		LastModifiedDate: now,
	}

	if err := s.db.Create(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *HeroContentService) Update(id int, input UpdateHeroContentInput) (*models.HeroContent, error) {
	var content models.HeroContent
	err := s.db.Where("content_id = ?", id).First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		content.Title = *input.Title
	}
	if input.Description != nil {
		content.Description = input.Description
	}
	if input.AnimationData != nil {
		content.AnimationData = input.AnimationData
	}
	if input.IsActive != nil {
		content.IsActive = *input.IsActive
	}
	content.LastModifiedDate = time.Now().UTC()

	if err := s.db.Save(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *HeroContentService) Delete(id int) (bool, error) {
	var content models.HeroContent
	err := s.db.Where("content_id = ?", id).First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.db.Delete(&content).Error; err != nil {
		return false, err
	}
	return true, nil
}
