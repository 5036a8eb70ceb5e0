package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"christmas-gift-api/config"
	"christmas-gift-api/models"
)

const statusCacheKey = "wish_list_submission_statuses"

// ErrNoSubmissionStatuses means the status reference table is empty or
// missing. Submission creation must fail rather than guess a default stage.
var ErrNoSubmissionStatuses = errors.New("wish list submission statuses not found")

// WishListSubmissionView is the projection returned to callers: the raw row
// plus the joined user and status display names.
type WishListSubmissionView struct {
	SubmissionID   int        `json:"submission_id"`
	UserID         int        `json:"user_id"`
	UserName       string     `json:"user_name"`
	StatusID       int        `json:"status_id"`
	StatusName     string     `json:"status_name"`
	IsActive       bool       `json:"is_active"`
	Reason         string     `json:"reason"`
	SubmissionDate time.Time  `json:"submission_date"`
	LastModified   time.Time  `json:"last_modified"`
	ShipmentDate   *time.Time `json:"shipment_date,omitempty"`
}

// UpdateWishListSubmissionInput carries a requested status change. A zero
// StatusID on the MakeInactive branch means "leave the status alone"; on the
// other branch it is written through as-is. Existing clients depend on both
// behaviors.
type UpdateWishListSubmissionInput struct {
	StatusID     int        `json:"status_id"`
	MakeInactive bool       `json:"make_inactive"`
	Reason       string     `json:"reason"`
	ShipmentDate *time.Time `json:"shipment_date,omitempty"`
}

type WishListSubmissionService struct {
	db    *gorm.DB
	cache *ReferenceCache
}

func NewWishListSubmissionService(db *gorm.DB, cache *ReferenceCache) *WishListSubmissionService {
	if db == nil {
		db = config.DB
	}
	return &WishListSubmissionService{db: db, cache: cache}
}

func (s *WishListSubmissionService) statuses() ([]models.WishListSubmissionStatus, error) {
	value, err := s.cache.GetOrLoad(statusCacheKey, func() (interface{}, error) {
		var rows []models.WishListSubmissionStatus
		if err := s.db.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load wish list submission statuses: %w", err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.WishListSubmissionStatus), nil
}

// AwaitingApprovalStatusID resolves the "Waiting for Approval" stage from
// reference data. Callers compare update results against this id to decide
// whether guardians and admins need to be notified.
func (s *WishListSubmissionService) AwaitingApprovalStatusID() (int, error) {
	statuses, err := s.statuses()
	if err != nil {
		return 0, err
	}
	for _, status := range statuses {
		if status.StatusName == models.StatusNameWaitingApproval {
			return status.StatusID, nil
		}
	}
	return 0, fmt.Errorf("status %q not found in reference data", models.StatusNameWaitingApproval)
}

// List returns every active submission joined with its user and status.
func (s *WishListSubmissionService) List() ([]WishListSubmissionView, error) {
	var rows []models.WishListSubmission
	if err := s.db.Preload("User").Preload("Status").
		Where("is_active = ?", true).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toSubmissionViews(rows), nil
}

// GetByID returns the joined submission, or (nil, nil) when no row exists.
func (s *WishListSubmissionService) GetByID(id int) (*WishListSubmissionView, error) {
	var row models.WishListSubmission
	err := s.db.Preload("User").Preload("Status").
		Where("submission_id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	view := toSubmissionView(row)
	return &view, nil
}

// ListByUser returns all of one user's submissions, active or not.
func (s *WishListSubmissionService) ListByUser(userID int) ([]WishListSubmissionView, error) {
	var rows []models.WishListSubmission
	if err := s.db.Preload("User").Preload("Status").
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toSubmissionViews(rows), nil
}

// Create starts a new submission in the workflow's first stage, the status
// with the minimum display_order.
func (s *WishListSubmissionService) Create(userID int) (*WishListSubmissionView, error) {
	statuses, err := s.statuses()
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return nil, ErrNoSubmissionStatuses
	}

	initial := statuses[0]
	for _, status := range statuses[1:] {
		if status.DisplayOrder < initial.DisplayOrder {
			initial = status
		}
	}

	now := time.Now().UTC()
	row := models.WishListSubmission{
		UserID:         userID,
		StatusID:       initial.StatusID,
		IsActive:       true,
		Reason:         "",
		SubmissionDate: now,
		LastModified:   now,
	}

	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}

	return s.GetByID(row.SubmissionID)
}

// Update applies a status change. Returns (nil, nil) when the submission does
// not exist.
func (s *WishListSubmissionService) Update(id int, input UpdateWishListSubmissionInput) (*WishListSubmissionView, error) {
	var row models.WishListSubmission
	err := s.db.Where("submission_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if input.ShipmentDate != nil {
		row.ShipmentDate = input.ShipmentDate
	}

	if input.MakeInactive {
		row.IsActive = false
		row.Reason = input.Reason
		row.LastModified = time.Now().UTC()
		if input.StatusID != 0 {
			row.StatusID = input.StatusID
		}
	} else {
		row.StatusID = input.StatusID
		row.LastModified = time.Now().UTC()
	}

	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}

	return s.GetByID(row.SubmissionID)
}

// Delete removes the submission outright, bypassing the workflow. Reports
// whether a row existed.
func (s *WishListSubmissionService) Delete(id int) (bool, error) {
	var row models.WishListSubmission
	err := s.db.Where("submission_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.db.Delete(&row).Error; err != nil {
		return false, err
	}
	return true, nil
}

func toSubmissionView(row models.WishListSubmission) WishListSubmissionView {
	view := WishListSubmissionView{
		SubmissionID:   row.SubmissionID,
		UserID:         row.UserID,
		StatusID:       row.StatusID,
		IsActive:       row.IsActive,
		Reason:         row.Reason,
		SubmissionDate: row.SubmissionDate,
		LastModified:   row.LastModified,
		ShipmentDate:   row.ShipmentDate,
	}
	if row.User != nil {
		view.UserName = row.User.Username
	}
	if row.Status != nil {
		view.StatusName = row.Status.StatusName
	}
	return view
}

func toSubmissionViews(rows []models.WishListSubmission) []WishListSubmissionView {
	views := make([]WishListSubmissionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toSubmissionView(row))
	}
	return views
}
