package models

import (
	"strings"
	"time"
)

type User struct {
	UserID           int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username         string     `gorm:"column:username;unique" json:"username"`
	PasswordHash     string     `gorm:"column:password_hash" json:"-"`
	Name             string     `gorm:"column:name" json:"name"`
	IsAdmin          bool       `gorm:"column:is_admin" json:"is_admin"`
	SpendingLimit    *float64   `gorm:"column:spending_limit" json:"spending_limit,omitempty"`
	SillyDescription *string    `gorm:"column:silly_description" json:"silly_description,omitempty"`
	GreetingMessage  *string    `gorm:"column:greeting_message" json:"greeting_message,omitempty"`
	Email            string     `gorm:"column:email" json:"email"`
	ParentEmail1     *string    `gorm:"column:parent_email1" json:"parent_email1,omitempty"`
	ParentEmail2     *string    `gorm:"column:parent_email2" json:"parent_email2,omitempty"`
	ParentPhone1     *string    `gorm:"column:parent_phone1" json:"parent_phone1,omitempty"`
	ParentPhone2     *string    `gorm:"column:parent_phone2" json:"parent_phone2,omitempty"`
	Birthday         *time.Time `gorm:"column:birthday" json:"birthday,omitempty"`
	CreatedDate      time.Time  `gorm:"column:created_date" json:"created_date"`
	LastModifiedDate time.Time  `gorm:"column:last_modified_date" json:"last_modified_date"`

	// Relations
	WishListItems []WishListItem       `gorm:"foreignKey:UserID" json:"wish_list_items,omitempty"`
	Submissions   []WishListSubmission `gorm:"foreignKey:UserID" json:"submissions,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// GuardianEmails returns the non-blank parent email addresses.
func (u *User) GuardianEmails() []string {
	emails := make([]string, 0, 2)
	for _, e := range []*string{u.ParentEmail1, u.ParentEmail2} {
		if e != nil && strings.TrimSpace(*e) != "" {
			emails = append(emails, *e)
		}
	}
	return emails
}

// GuardianPhones returns the non-blank parent phone numbers.
func (u *User) GuardianPhones() []string {
	phones := make([]string, 0, 2)
	for _, p := range []*string{u.ParentPhone1, u.ParentPhone2} {
		if p != nil && strings.TrimSpace(*p) != "" {
			phones = append(phones, *p)
		}
	}
	return phones
}
