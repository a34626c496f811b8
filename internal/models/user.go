package models

import (
	"errors"
	"time"
)

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

var Majors = []string{"Computer Science", "Electrical Engineering", "Computer Engineering", "Other"}

var ClassStandings = []string{"Freshman", "Sophomore", "Junior", "Senior"}

type User struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	PasswordHash  string            `json:"-"`
	Role          string            `json:"role"`
	IsVerified    bool              `json:"is_verified"`
	Major         string            `json:"major,omitempty"`
	ClassStanding string            `json:"classStanding,omitempty"`
	GPA           *float64          `json:"gpa,omitempty"`
	Coursework    map[string]string `json:"coursework,omitempty"`

	VerificationCode    string     `json:"-"`
	VerificationExpires *time.Time `json:"-"`
	ResetToken          string     `json:"-"`
	ResetExpires        *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Profile is the academic subset exposed to instructors and to the
// student themselves.
type Profile struct {
	Major         string            `json:"major,omitempty"`
	ClassStanding string            `json:"classStanding,omitempty"`
	GPA           *float64          `json:"gpa,omitempty"`
	Coursework    map[string]string `json:"coursework,omitempty"`
}

// ProfileUpdate carries a partial profile edit. Nil fields are left
// untouched by the store.
type ProfileUpdate struct {
	Major         *string
	ClassStanding *string
	GPA           *float64
	Coursework    map[string]string
}

var (
	ErrInvalidRole          = errors.New("role must be student or instructor")
	ErrInvalidMajor         = errors.New("invalid major")
	ErrInvalidClassStanding = errors.New("invalid class standing")
)

func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleInstructor
}

// ValidateNewUser runs at the store boundary before inserting.
func ValidateNewUser(u *User) error {
	if !ValidRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

// ValidateProfileUpdate checks the enum fields of a partial update.
func ValidateProfileUpdate(p *ProfileUpdate) error {
	if p.Major != nil && !contains(Majors, *p.Major) {
		return ErrInvalidMajor
	}
	if p.ClassStanding != nil && !contains(ClassStandings, *p.ClassStanding) {
		return ErrInvalidClassStanding
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
