package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"christmas-gift-api/config"
	"christmas-gift-api/models"
)

const approvalEmailSubject = "Wish List Approval Required"

var approvalEmailTemplate = template.Must(template.New("approval").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Wish List Approval</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 20px; border-radius: 8px;">
    <div style="font-size: 24px; color: #333333; margin-bottom: 20px;">Wish List Approval Required</div>
    <div style="font-size: 16px; color: #555555; line-height: 1.6;">
      <p>Hello,</p>
      <p>{{.Intro}}</p>
      <p>Please visit the link below to review the submission:</p>
      <a href="{{.ApprovalLink}}" style="display: inline-block; padding: 10px 20px; font-size: 16px; color: #ffffff; background-color: #007bff; text-decoration: none; border-radius: 5px;">Review Submission</a>
      <p>If the button above doesn't work, you can also copy and paste the following link into your browser:</p>
      <p><a href="{{.ApprovalLink}}">{{.ApprovalLink}}</a></p>
    </div>
    <div style="margin-top: 30px; font-size: 14px; color: #888888; text-align: center;">
      <p>Thank you,</p>
      <p>The Gift Registry</p>
    </div>
  </div>
</body>
</html>
`))

// WishListNotificationService resolves the recipient set for a submission
// awaiting approval and fans the notification out over email and SMS.
type WishListNotificationService struct {
	db       *gorm.DB
	notifier Notifier

	approvalBaseURL   string
	smsFallbackNumber string
}

func NewWishListNotificationService(db *gorm.DB, notifier Notifier) *WishListNotificationService {
	if db == nil {
		db = config.DB
	}
	if notifier == nil {
		notifier = TransportNotifier{}
	}
	return &WishListNotificationService{
		db:                db,
		notifier:          notifier,
		approvalBaseURL:   os.Getenv("APPROVAL_BASE_URL"),
		smsFallbackNumber: os.Getenv("SMS_FALLBACK_NUMBER"),
	}
}

// SendApprovalRequest notifies the user's guardians and every admin that a
// wish list needs review. A missing user is a no-op. Calling it twice sends
// duplicate notifications; callers trigger it only on creation and on the
// transition into the waiting-for-approval stage.
func (s *WishListNotificationService) SendApprovalRequest(userID int) error {
	var user models.User
	err := s.db.Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var adminEmails []string
	if err := s.db.Model(&models.User{}).
		Where("is_admin = ?", true).
		Pluck("email", &adminEmails).Error; err != nil {
		return err
	}

	// Guardian emails first, then every admin. Duplicates are kept.
	emailRecipients := append(user.GuardianEmails(), adminEmails...)
	phoneRecipients := s.phoneRecipients(&user)

	var emailErr error
	if len(emailRecipients) > 0 {
		html, err := s.renderApprovalEmail(&user)
		if err != nil {
			return err
		}
		if emailErr = s.notifier.SendEmail(emailRecipients, approvalEmailSubject, html); emailErr != nil {
			log.Printf("Failed to send approval email for user %d: %v", userID, emailErr)
		}
	}

	var smsErr error
	if len(phoneRecipients) > 0 {
		smsErr = sendSMSFanout(s.notifier, phoneRecipients, s.approvalSMSText(&user))
	}

	if emailErr != nil {
		return emailErr
	}
	return smsErr
}

// phoneRecipients is the deduplicated union of the user's guardian phones and
// the operator fallback number.
func (s *WishListNotificationService) phoneRecipients(user *models.User) []string {
	candidates := user.GuardianPhones()
	if strings.TrimSpace(s.smsFallbackNumber) != "" {
		candidates = append(candidates, s.smsFallbackNumber)
	}

	seen := make(map[string]bool, len(candidates))
	unique := make([]string, 0, len(candidates))
	for _, phone := range candidates {
		if seen[phone] {
			continue
		}
		seen[phone] = true
		unique = append(unique, phone)
	}
	return unique
}

func (s *WishListNotificationService) approvalLink(user *models.User) string {
	return fmt.Sprintf("%s%d", s.approvalBaseURL, user.UserID)
}

func (s *WishListNotificationService) renderApprovalEmail(user *models.User) (string, error) {
	intro := "A wish list is ready for approval."
	if user.Name != "" {
		intro = fmt.Sprintf("%s has a wish list ready for approval.", user.Name)
	}

	var buf bytes.Buffer
	err := approvalEmailTemplate.Execute(&buf, struct {
		Intro        string
		ApprovalLink string
	}{
		Intro:        intro,
		ApprovalLink: s.approvalLink(user),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *WishListNotificationService) approvalSMSText(user *models.User) string {
	if user.Name != "" {
		return fmt.Sprintf("%s has a wish list ready for approval. Review it at %s", user.Name, s.approvalLink(user))
	}
	return fmt.Sprintf("A wish list is ready for approval. Review it at %s", s.approvalLink(user))
}
