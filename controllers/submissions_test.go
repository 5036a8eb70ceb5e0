package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"christmas-gift-api/models"
	"christmas-gift-api/services"
)

type countingNotifier struct {
	mu         sync.Mutex
	emailSends int
	smsSends   int
}

func (n *countingNotifier) SendEmail(to []string, subject, html string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emailSends++
	return nil
}

func (n *countingNotifier) SendSMS(to, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.smsSends++
	return nil
}

func (n *countingNotifier) emails() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.emailSends
}

func (n *countingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emailSends = 0
	n.smsSends = 0
}

func newWorkflowFixture(t *testing.T) (*SubmissionController, *countingNotifier, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "gift.db")), &gorm.Config{
		Logger:                                   logger.Discard,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.WishListSubmissionStatus{},
		&models.WishListSubmission{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	now := time.Now().UTC()
	statuses := []models.WishListSubmissionStatus{
		{StatusID: 1, StatusName: models.StatusNameWaitingApproval, DisplayOrder: 1, CreatedDate: now, LastModifiedDate: now},
		{StatusID: 2, StatusName: "Approved", DisplayOrder: 2, CreatedDate: now, LastModifiedDate: now},
		{StatusID: 3, StatusName: "Shipped", DisplayOrder: 3, CreatedDate: now, LastModifiedDate: now},
	}
	if err := db.Create(&statuses).Error; err != nil {
		t.Fatalf("failed to seed statuses: %v", err)
	}

	mom := "mom@example.com"
	kid := models.User{
		UserID: 1, Username: "kid", Name: "Sam", Email: "kid@example.com",
		ParentEmail1: &mom, CreatedDate: now, LastModifiedDate: now,
	}
	if err := db.Create(&kid).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	cache := services.NewReferenceCache(24 * time.Hour)
	notifier := &countingNotifier{}
	ctrl := NewSubmissionController(
		services.NewWishListSubmissionService(db, cache),
		services.NewWishListNotificationService(db, notifier),
	)
	return ctrl, notifier, db
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, body string, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	handler(c)
	return w
}

func TestCreateSubmissionNotifiesApprovers(t *testing.T) {
	ctrl, notifier, _ := newWorkflowFixture(t)

	w := performJSON(t, ctrl.Create, http.MethodPost, `{"user_id":1}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var view services.WishListSubmissionView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if view.StatusID != 1 {
		t.Fatalf("expected initial status 1, got %d", view.StatusID)
	}
	if notifier.emails() != 1 {
		t.Fatalf("expected exactly one approval email, got %d", notifier.emails())
	}
}

func TestUpdateToAwaitingApprovalNotifiesExactlyOnce(t *testing.T) {
	ctrl, notifier, _ := newWorkflowFixture(t)

	w := performJSON(t, ctrl.Create, http.MethodPost, `{"user_id":1}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var view services.WishListSubmissionView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	notifier.reset()

	id := strconv.Itoa(view.SubmissionID)
	w = performJSON(t, ctrl.Update, http.MethodPut, `{"status_id":1,"make_inactive":false}`,
		gin.Params{{Key: "id", Value: id}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if notifier.emails() != 1 {
		t.Fatalf("expected exactly one approval email, got %d", notifier.emails())
	}
}

func TestUpdateToOtherStatusDoesNotNotify(t *testing.T) {
	ctrl, notifier, _ := newWorkflowFixture(t)

	w := performJSON(t, ctrl.Create, http.MethodPost, `{"user_id":1}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var view services.WishListSubmissionView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	notifier.reset()

	id := strconv.Itoa(view.SubmissionID)
	w = performJSON(t, ctrl.Update, http.MethodPut, `{"status_id":2,"make_inactive":false}`,
		gin.Params{{Key: "id", Value: id}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if notifier.emails() != 0 {
		t.Fatalf("expected no approval email, got %d", notifier.emails())
	}
}

func TestUpdateMissingSubmissionReturns404(t *testing.T) {
	ctrl, _, _ := newWorkflowFixture(t)

	w := performJSON(t, ctrl.Update, http.MethodPut, `{"status_id":2}`,
		gin.Params{{Key: "id", Value: "999"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteSubmissionReturns404WhenMissing(t *testing.T) {
	ctrl, _, _ := newWorkflowFixture(t)

	w := performJSON(t, ctrl.Delete, http.MethodDelete, "",
		gin.Params{{Key: "id", Value: "999"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
