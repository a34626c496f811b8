package models

import "time"

type Job struct {
	ID              int64     `json:"id"`
	JobTitle        string    `json:"jobTitle"`
	JobDescription  string    `json:"jobDescription"`
	EmployerEmail   string    `json:"employerEmail"`
	EmployerPhone   string    `json:"employerPhone,omitempty"`
	InstructorEmail string    `json:"instructorEmail"`
	IsActive        bool      `json:"isActive"`
	DatePosted      time.Time `json:"datePosted"`
	Applicants      []int64   `json:"applicants"`
}

// Applicant is a job applicant expanded with profile fields, returned to
// the posting instructor.
type Applicant struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Major         string   `json:"major,omitempty"`
	ClassStanding string   `json:"classStanding,omitempty"`
	GPA           *float64 `json:"gpa,omitempty"`
}

// JobWithApplicants is the instructor's view of an own posting.
type JobWithApplicants struct {
	Job
	ApplicantProfiles []Applicant `json:"applicantProfiles"`
}

// Application is a student's view of a job they applied to.
type Application struct {
	ID            int64  `json:"id"`
	JobTitle      string `json:"jobTitle"`
	EmployerEmail string `json:"employerEmail"`
}

// JobEdit is a wholesale replacement of the editable job fields.
type JobEdit struct {
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
	EmployerEmail  string `json:"employerEmail"`
	EmployerPhone  string `json:"employerPhone"`
}
