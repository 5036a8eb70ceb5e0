package models

import "time"

// RecommendWishListItem is an admin-curated gift suggestion shown to users.
type RecommendWishListItem struct {
	RecommendItemID int       `gorm:"primaryKey;column:recommend_item_id" json:"recommend_item_id"`
	UserID          int       `gorm:"column:user_id" json:"user_id"`
	ItemName        string    `gorm:"column:item_name" json:"item_name"`
	Description     *string   `gorm:"column:description" json:"description,omitempty"`
	ProductUrl      *string   `gorm:"column:product_url" json:"product_url,omitempty"`
	ProductSrcImage *string   `gorm:"column:product_src_image" json:"product_src_image,omitempty"`
	EstimatedCost   *float64  `gorm:"column:estimated_cost" json:"estimated_cost,omitempty"`
	DefaultQuantity int       `gorm:"column:default_quantity" json:"default_quantity"`
	IsActive        bool      `gorm:"column:is_active" json:"is_active"`
	DateAdded       time.Time `gorm:"column:date_added" json:"date_added"`
	LastModified    time.Time `gorm:"column:last_modified" json:"last_modified"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (RecommendWishListItem) TableName() string {
	return "recommend_wish_list_items"
}
