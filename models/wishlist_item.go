package models

import "time"

type WishListItem struct {
	ItemID        int       `gorm:"primaryKey;column:item_id" json:"item_id"`
	UserID        int       `gorm:"column:user_id" json:"user_id"`
	ItemName      string    `gorm:"column:item_name" json:"item_name"`
	Description   *string   `gorm:"column:description" json:"description,omitempty"`
	Quantity      int       `gorm:"column:quantity;default:1" json:"quantity"`
	EstimatedCost *float64  `gorm:"column:estimated_cost" json:"estimated_cost,omitempty"`
	ProductUrl    *string   `gorm:"column:product_url" json:"product_url,omitempty"`
	DateAdded     time.Time `gorm:"column:date_added" json:"date_added"`
	LastModified  time.Time `gorm:"column:last_modified" json:"last_modified"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (WishListItem) TableName() string {
	return "wish_list_items"
}
