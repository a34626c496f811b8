package models

import (
	"errors"
	"testing"
)

func TestValidateNewUser_Role(t *testing.T) {
	t.Parallel()

	if err := ValidateNewUser(&User{Role: RoleStudent}); err != nil {
		t.Fatalf("student: %v", err)
	}
	if err := ValidateNewUser(&User{Role: RoleInstructor}); err != nil {
		t.Fatalf("instructor: %v", err)
	}
	if err := ValidateNewUser(&User{Role: "admin"}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestValidateProfileUpdate(t *testing.T) {
	t.Parallel()

	good := "Computer Science"
	if err := ValidateProfileUpdate(&ProfileUpdate{Major: &good}); err != nil {
		t.Fatalf("valid major rejected: %v", err)
	}
	bad := "Astrology"
	if err := ValidateProfileUpdate(&ProfileUpdate{Major: &bad}); !errors.Is(err, ErrInvalidMajor) {
		t.Fatalf("expected ErrInvalidMajor, got %v", err)
	}
	standing := "Sophomore"
	if err := ValidateProfileUpdate(&ProfileUpdate{ClassStanding: &standing}); err != nil {
		t.Fatalf("valid standing rejected: %v", err)
	}
	badStanding := "Supersenior"
	if err := ValidateProfileUpdate(&ProfileUpdate{ClassStanding: &badStanding}); !errors.Is(err, ErrInvalidClassStanding) {
		t.Fatalf("expected ErrInvalidClassStanding, got %v", err)
	}
	// empty update is a no-op, not an error
	if err := ValidateProfileUpdate(&ProfileUpdate{}); err != nil {
		t.Fatalf("empty update: %v", err)
	}
}
