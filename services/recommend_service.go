package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"christmas-gift-api/config"
	"christmas-gift-api/models"
)

type CreateRecommendItemInput struct {
	UserID          int      `json:"user_id" binding:"required"`
	ItemName        string   `json:"item_name" binding:"required"`
	Description     *string  `json:"description"`
	ProductUrl      *string  `json:"product_url"`
	ProductSrcImage *string  `json:"product_src_image"`
	EstimatedCost   *float64 `json:"estimated_cost"`
	DefaultQuantity int      `json:"default_quantity"`
	IsActive        bool     `json:"is_active"`
}

type UpdateRecommendItemInput struct {
	ItemName        *string  `json:"item_name"`
	Description     *string  `json:"description"`
	ProductUrl      *string  `json:"product_url"`
	ProductSrcImage *string  `json:"product_src_image"`
	EstimatedCost   *float64 `json:"estimated_cost"`
	DefaultQuantity *int     `json:"default_quantity"`
	IsActive        *bool    `json:"is_active"`
}

type RecommendService struct {
	db *gorm.DB
}

func NewRecommendService(db *gorm.DB) *RecommendService {
	if db == nil {
		db = config.DB
	}
	return &RecommendService{db: db}
}

// ListActive returns the suggestions currently shown to users.
func (s *RecommendService) ListActive() ([]models.RecommendWishListItem, error) {
	var items []models.RecommendWishListItem
	if err := s.db.Where("is_active = ?", true).
		Order("date_added DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RecommendService) List() ([]models.RecommendWishListItem, error) {
	var items []models.RecommendWishListItem
	if err := s.db.Order("date_added DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RecommendService) GetByID(id int) (*models.RecommendWishListItem, error) {
	var item models.RecommendWishListItem
	err := s.db.Where("recommend_item_id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *RecommendService) Create(input CreateRecommendItemInput) (*models.RecommendWishListItem, error) {
	quantity := input.DefaultQuantity
	if quantity <= 0 {
		quantity = 1
	}

	now := time.Now().UTC()
	item := models.RecommendWishListItem{
		UserID:          input.UserID,
		ItemName:        input.ItemName,
		Description:     input.Description,
		ProductUrl:      input.ProductUrl,
		ProductSrcImage: input.ProductSrcImage,
		EstimatedCost:   input.EstimatedCost,
		DefaultQuantity: quantity,
		IsActive:        input.IsActive,
		DateAdded:       now,
		LastModified:    now,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *RecommendService) Update(id int, input UpdateRecommendItemInput) (*models.RecommendWishListItem, error) {
	var item models.RecommendWishListItem
	err := s.db.Where("recommend_item_id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if input.ItemName != nil {
		item.ItemName = *input.ItemName
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.ProductUrl != nil {
		item.ProductUrl = input.ProductUrl
	}
	if input.ProductSrcImage != nil {
		item.ProductSrcImage = input.ProductSrcImage
	}
	if input.EstimatedCost != nil {
		item.EstimatedCost = input.EstimatedCost
	}
	if input.DefaultQuantity != nil && *input.DefaultQuantity > 0 {
		item.DefaultQuantity = *input.DefaultQuantity
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	item.LastModified = time.Now().UTC()

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *RecommendService) Delete(id int) (bool, error) {
	var item models.RecommendWishListItem
	err := s.db.Where("recommend_item_id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}
