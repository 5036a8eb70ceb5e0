package services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"christmas-gift-api/config"
	"christmas-gift-api/models"
	"christmas-gift-api/utils"
)

// CreateUserInput is the admin-facing payload for provisioning a user.
type CreateUserInput struct {
	Username        string     `json:"username" binding:"required"`
	Password        string     `json:"password" binding:"required,min=6"`
	Name            string     `json:"name"`
	Email           string     `json:"email" binding:"required,email"`
	IsAdmin         bool       `json:"is_admin"`
	SpendingLimit   *float64   `json:"spending_limit"`
	GreetingMessage *string    `json:"greeting_message"`
	ParentEmail1    *string    `json:"parent_email1"`
	ParentEmail2    *string    `json:"parent_email2"`
	ParentPhone1    *string    `json:"parent_phone1"`
	ParentPhone2    *string    `json:"parent_phone2"`
	Birthday        *time.Time `json:"birthday"`
}

// UpdateUserInput carries profile fields an admin may change. Pointer fields
// left nil are not touched.
type UpdateUserInput struct {
	Name            *string    `json:"name"`
	Email           *string    `json:"email"`
	IsAdmin         *bool      `json:"is_admin"`
	SpendingLimit   *float64   `json:"spending_limit"`
	GreetingMessage *string    `json:"greeting_message"`
	ParentEmail1    *string    `json:"parent_email1"`
	ParentEmail2    *string    `json:"parent_email2"`
	ParentPhone1    *string    `json:"parent_phone1"`
	ParentPhone2    *string    `json:"parent_phone2"`
	Birthday        *time.Time `json:"birthday"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	if db == nil {
		db = config.DB
	}
	return &UserService{db: db}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user, or (nil, nil) when no row exists.
func (s *UserService) GetByID(id int) (*models.User, error) {
	var user models.User
	err := s.db.Where("user_id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// validateGuardianContacts rejects malformed parent emails and phones before
// they can poison the notification recipient set.
func validateGuardianContacts(emails, phones []*string) error {
	for _, e := range emails {
		if e != nil && *e != "" && !utils.ValidateEmail(*e) {
			return fmt.Errorf("invalid guardian email: %s", *e)
		}
	}
	for _, p := range phones {
		if p != nil && *p != "" && !utils.ValidatePhone(*p) {
			return fmt.Errorf("invalid guardian phone: %s", *p)
		}
	}
	return nil
}

func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if err := validateGuardianContacts(
		[]*string{input.ParentEmail1, input.ParentEmail2},
		[]*string{input.ParentPhone1, input.ParentPhone2},
	); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := models.User{
		Username:         input.Username,
		PasswordHash:     string(hash),
		Name:             input.Name,
		Email:            input.Email,
		IsAdmin:          input.IsAdmin,
		SpendingLimit:    input.SpendingLimit,
		GreetingMessage:  input.GreetingMessage,
		ParentEmail1:     input.ParentEmail1,
		ParentEmail2:     input.ParentEmail2,
		ParentPhone1:     input.ParentPhone1,
		ParentPhone2:     input.ParentPhone2,
		Birthday:         input.Birthday,
		CreatedDate:      now,
		LastModifiedDate: now,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(id int, input UpdateUserInput) (*models.User, error) {
	var user models.User
	err := s.db.Where("user_id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := validateGuardianContacts(
		[]*string{input.ParentEmail1, input.ParentEmail2},
		[]*string{input.ParentPhone1, input.ParentPhone2},
	); err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	if input.SpendingLimit != nil {
		user.SpendingLimit = input.SpendingLimit
	}
	if input.GreetingMessage != nil {
		user.GreetingMessage = input.GreetingMessage
	}
	if input.ParentEmail1 != nil {
		user.ParentEmail1 = input.ParentEmail1
	}
	if input.ParentEmail2 != nil {
		user.ParentEmail2 = input.ParentEmail2
	}
	if input.ParentPhone1 != nil {
		user.ParentPhone1 = input.ParentPhone1
	}
	if input.ParentPhone2 != nil {
		user.ParentPhone2 = input.ParentPhone2
	}
	if input.Birthday != nil {
		user.Birthday = input.Birthday
	}
	user.LastModifiedDate = time.Now().UTC()

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ChangePassword(id int, newPassword string) (bool, error) {
	var user models.User
	err := s.db.Where("user_id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user.PasswordHash = string(hash)
	user.LastModifiedDate = time.Now().UTC()
	if err := s.db.Save(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) Delete(id int) (bool, error) {
	var user models.User
	err := s.db.Where("user_id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}
