package services

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"christmas-gift-api/models"
)

func TestCreateUserHashesPassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.Create(CreateUserInput{
		Username: "kid",
		Password: "north-pole-1225",
		Name:     "Sam",
		Email:    "kid@example.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if user.PasswordHash == "north-pole-1225" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("north-pole-1225")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestCreateUserRejectsMalformedGuardianContacts(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Create(CreateUserInput{
		Username:     "kid",
		Password:     "north-pole-1225",
		Email:        "kid@example.com",
		ParentEmail1: strPtr("not-an-email"),
	})
	if err == nil || !strings.Contains(err.Error(), "guardian email") {
		t.Fatalf("expected guardian email rejection, got %v", err)
	}

	_, err = svc.Create(CreateUserInput{
		Username:     "kid",
		Password:     "north-pole-1225",
		Email:        "kid@example.com",
		ParentPhone1: strPtr("call me maybe"),
	})
	if err == nil || !strings.Contains(err.Error(), "guardian phone") {
		t.Fatalf("expected guardian phone rejection, got %v", err)
	}
}

func TestChangePasswordMissingUserReturnsFalse(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	changed, err := svc.ChangePassword(42, "new-password")
	if err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if changed {
		t.Fatal("expected no change for a missing user")
	}
}

func TestGuardianContactAccessorsSkipBlanks(t *testing.T) {
	user := models.User{
		ParentEmail1: strPtr("mom@example.com"),
		ParentEmail2: strPtr("   "),
		ParentPhone1: strPtr(""),
		ParentPhone2: strPtr("555-2"),
	}

	if emails := user.GuardianEmails(); len(emails) != 1 || emails[0] != "mom@example.com" {
		t.Fatalf("unexpected guardian emails %v", emails)
	}
	if phones := user.GuardianPhones(); len(phones) != 1 || phones[0] != "555-2" {
		t.Fatalf("unexpected guardian phones %v", phones)
	}
}
