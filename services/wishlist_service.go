package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"christmas-gift-api/config"
	"christmas-gift-api/models"
)

type CreateWishListItemInput struct {
	UserID        int      `json:"user_id" binding:"required"`
	ItemName      string   `json:"item_name" binding:"required"`
	Description   *string  `json:"description"`
	Quantity      int      `json:"quantity"`
	EstimatedCost *float64 `json:"estimated_cost"`
	ProductUrl    *string  `json:"product_url"`
}

type UpdateWishListItemInput struct {
	ItemName      *string  `json:"item_name"`
	Description   *string  `json:"description"`
	Quantity      *int     `json:"quantity"`
	EstimatedCost *float64 `json:"estimated_cost"`
	ProductUrl    *string  `json:"product_url"`
}

type WishListService struct {
	db *gorm.DB
}

func NewWishListService(db *gorm.DB) *WishListService {
	if db == nil {
		db = config.DB
	}
	return &WishListService{db: db}
}

func (s *WishListService) ListByUser(userID int) ([]models.WishListItem, error) {
	var items []models.WishListItem
	if err := s.db.Where("user_id = ?", userID).
		Order("date_added DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *WishListService) GetByID(id int) (*models.WishListItem, error) {
	var item models.WishListItem
	err := s.db.Where("item_id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WishListService) Create(input CreateWishListItemInput) (*models.WishListItem, error) {
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	now := time.Now().UTC()
	item := models.WishListItem{
		UserID:        input.UserID,
		ItemName:      input.ItemName,
		Description:   input.Description,
		Quantity:      quantity,
		EstimatedCost: input.EstimatedCost,
		ProductUrl:    input.ProductUrl,
		DateAdded:     now,
		LastModified:  now,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WishListService) Update(id int, input UpdateWishListItemInput) (*models.WishListItem, error) {
	var item models.WishListItem
	err := s.db.Where("item_id = ?", id).First(&item).Error
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
	if input.Quantity != nil && *input.Quantity > 0 {
		item.Quantity = *input.Quantity
	}
	if input.EstimatedCost != nil {
		item.EstimatedCost = input.EstimatedCost
	}
	if input.ProductUrl != nil {
		item.ProductUrl = input.ProductUrl
	}
	item.LastModified = time.Now().UTC()

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WishListService) Delete(id int) (bool, error) {
	var item models.WishListItem
	err := s.db.Where("item_id = ?", id).First(&item).Error
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
