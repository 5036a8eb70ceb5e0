package models

import "time"

// WishListSubmission is one user's wish list sent through the approval workflow.
type WishListSubmission struct {
	SubmissionID   int        `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	UserID         int        `gorm:"column:user_id" json:"user_id"`
	StatusID       int        `gorm:"column:status_id" json:"status_id"`
	IsActive       bool       `gorm:"column:is_active;default:true" json:"is_active"`
	Reason         string     `gorm:"column:reason" json:"reason"`
	SubmissionDate time.Time  `gorm:"column:submission_date" json:"submission_date"`
	LastModified   time.Time  `gorm:"column:last_modified" json:"last_modified"`
	ShipmentDate   *time.Time `gorm:"column:shipment_date" json:"shipment_date,omitempty"`

	// Relations
	User   *User                     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status *WishListSubmissionStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
}

func (WishListSubmission) TableName() string {
	return "wish_list_submissions"
}

// WishListSubmissionStatus is workflow reference data ordered by display_order;
// the minimum display_order is the stage every new submission starts in.
type WishListSubmissionStatus struct {
	StatusID          int       `gorm:"primaryKey;column:status_id" json:"status_id"`
	StatusName        string    `gorm:"column:status_name" json:"status_name"`
	StatusDescription *string   `gorm:"column:status_description" json:"status_description,omitempty"`
	DisplayOrder      int       `gorm:"column:display_order" json:"display_order"`
	CreatedDate       time.Time `gorm:"column:created_date" json:"created_date"`
	LastModifiedDate  time.Time `gorm:"column:last_modified_date" json:"last_modified_date"`
}

func (WishListSubmissionStatus) TableName() string {
	return "wish_list_submission_statuses"
}

// StatusNameWaitingApproval is the well-known stage that triggers guardian and
// admin notifications. Resolved against reference data, never compared by id.
const StatusNameWaitingApproval = "Waiting for Approval"
