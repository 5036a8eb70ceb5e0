package services

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm"

	"christmas-gift-api/models"
)

type fakeNotifier struct {
	mu sync.Mutex

	emailCalls []emailCall
	smsCalls   []smsCall

	emailErr error
	smsErrFn func(to string) error
}

type emailCall struct {
	to      []string
	subject string
	html    string
}

type smsCall struct {
	to      string
	message string
}

func (f *fakeNotifier) SendEmail(to []string, subject, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emailCalls = append(f.emailCalls, emailCall{to: to, subject: subject, html: html})
	return f.emailErr
}

func (f *fakeNotifier) SendSMS(to, message string) error {
	f.mu.Lock()
	f.smsCalls = append(f.smsCalls, smsCall{to: to, message: message})
	f.mu.Unlock()
	if f.smsErrFn != nil {
		return f.smsErrFn(to)
	}
	return nil
}

func (f *fakeNotifier) smsRecipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	recipients := make([]string, 0, len(f.smsCalls))
	for _, call := range f.smsCalls {
		recipients = append(recipients, call.to)
	}
	sort.Strings(recipients)
	return recipients
}

func newNotificationFixture(t *testing.T, fallback string) (*WishListNotificationService, *fakeNotifier, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewWishListNotificationService(db, notifier)
	svc.approvalBaseURL = "https://gifts.example.com/approve/"
	svc.smsFallbackNumber = fallback
	return svc, notifier, db
}

func TestSendApprovalRequestMissingUserIsNoop(t *testing.T) {
	svc, notifier, _ := newNotificationFixture(t, "555-0000")

	if err := svc.SendApprovalRequest(999); err != nil {
		t.Fatalf("expected no-op for missing user, got %v", err)
	}
	if len(notifier.emailCalls) != 0 || len(notifier.smsCalls) != 0 {
		t.Fatal("expected no notifications for a missing user")
	}
}

func TestEmailRecipientsAreGuardiansPlusAdminsWithoutDedup(t *testing.T) {
	svc, notifier, db := newNotificationFixture(t, "")

	kid := seedUser(t, db, models.User{
		UserID:       1,
		Username:     "kid",
		Name:         "Sam",
		Email:        "kid@example.com",
		ParentEmail1: strPtr("mom@example.com"),
		ParentEmail2: strPtr("dad@example.com"),
	})
	seedUser(t, db, models.User{UserID: 2, Username: "admin1", Email: "admin1@example.com", IsAdmin: true})
	seedUser(t, db, models.User{UserID: 3, Username: "admin2", Email: "admin2@example.com", IsAdmin: true})

	if err := svc.SendApprovalRequest(kid.UserID); err != nil {
		t.Fatalf("SendApprovalRequest returned error: %v", err)
	}

	if len(notifier.emailCalls) != 1 {
		t.Fatalf("expected one email send, got %d", len(notifier.emailCalls))
	}
	call := notifier.emailCalls[0]
	if len(call.to) != 4 {
		t.Fatalf("expected 4 email recipients, got %d (%v)", len(call.to), call.to)
	}
	if call.subject != "Wish List Approval Required" {
		t.Fatalf("unexpected subject %q", call.subject)
	}
	if !strings.Contains(call.html, "Sam has a wish list ready for approval.") {
		t.Fatal("expected email body to name the user")
	}
	if !strings.Contains(call.html, "https://gifts.example.com/approve/1") {
		t.Fatal("expected email body to carry the approval link")
	}
}

func TestEmailBodyFallsBackWhenUserHasNoName(t *testing.T) {
	svc, notifier, db := newNotificationFixture(t, "")

	kid := seedUser(t, db, models.User{
		UserID:       1,
		Username:     "kid",
		Email:        "kid@example.com",
		ParentEmail1: strPtr("mom@example.com"),
	})

	if err := svc.SendApprovalRequest(kid.UserID); err != nil {
		t.Fatalf("SendApprovalRequest returned error: %v", err)
	}
	if len(notifier.emailCalls) != 1 {
		t.Fatalf("expected one email send, got %d", len(notifier.emailCalls))
	}
	if !strings.Contains(notifier.emailCalls[0].html, "A wish list is ready for approval.") {
		t.Fatal("expected generic body for a nameless user")
	}
}

func TestNoEmailRecipientsSkipsEmailSilently(t *testing.T) {
	svc, notifier, db := newNotificationFixture(t, "555-0000")

	kid := seedUser(t, db, models.User{
		UserID:       1,
		Username:     "kid",
		Email:        "kid@example.com",
		ParentPhone1: strPtr("555-1234"),
	})

	if err := svc.SendApprovalRequest(kid.UserID); err != nil {
		t.Fatalf("SendApprovalRequest returned error: %v", err)
	}
	if len(notifier.emailCalls) != 0 {
		t.Fatal("expected no email without recipients")
	}
	if len(notifier.smsCalls) == 0 {
		t.Fatal("expected SMS to still go out")
	}
}

func TestPhoneRecipientsAreDeduplicated(t *testing.T) {
	svc, notifier, db := newNotificationFixture(t, "555-0000")

	kid := seedUser(t, db, models.User{
		UserID:       1,
		Username:     "kid",
		Email:        "kid@example.com",
		ParentPhone1: strPtr("555-1"),
		ParentPhone2: strPtr("555-1"),
	})

	if err := svc.SendApprovalRequest(kid.UserID); err != nil {
		t.Fatalf("SendApprovalRequest returned error: %v", err)
	}

	recipients := notifier.smsRecipients()
	if len(recipients) != 2 {
		t.Fatalf("expected 2 unique phone recipients, got %v", recipients)
	}
	if recipients[0] != "555-0000" || recipients[1] != "555-1" {
		t.Fatalf("unexpected phone recipients %v", recipients)
	}
}

func TestSMSFailureDoesNotStopOtherRecipients(t *testing.T) {
	svc, notifier, db := newNotificationFixture(t, "555-0000")

	boom := errors.New("gateway rejected")
	notifier.smsErrFn = func(to string) error {
		if to == "555-1" {
			return boom
		}
		return nil
	}

	kid := seedUser(t, db, models.User{
		UserID:       1,
		Username:     "kid",
		Email:        "kid@example.com",
		ParentPhone1: strPtr("555-1"),
		ParentPhone2: strPtr("555-2"),
	})

	err := svc.SendApprovalRequest(kid.UserID)
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error surfaced, got %v", err)
	}

	if got := len(notifier.smsRecipients()); got != 3 {
		t.Fatalf("expected all 3 recipients attempted, got %d", got)
	}
}

func TestEmailTransportFailureSurfaces(t *testing.T) {
	svc, notifier, db := newNotificationFixture(t, "")

	boom := errors.New("smtp down")
	notifier.emailErr = boom

	kid := seedUser(t, db, models.User{
		UserID:       1,
		Username:     "kid",
		Email:        "kid@example.com",
		ParentEmail1: strPtr("mom@example.com"),
	})

	if err := svc.SendApprovalRequest(kid.UserID); !errors.Is(err, boom) {
		t.Fatalf("expected smtp error surfaced, got %v", err)
	}
}
