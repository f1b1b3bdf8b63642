// Package entity defines the domain entities for the applications feature.
package entity

import "time"

// Application statuses. An application starts as StatusPending and only an
// administrator moves it through the rest of the lifecycle.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Statuses lists every valid application status.
var Statuses = []string{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

// Application represents a user's application to a job posting.
//
// JobTitle, Name and Email are snapshots taken when the application is
// created; they stay frozen even if the job or user record changes later.
// The composite unique index enforces at most one application per
// (job, user) pair at the storage layer.
type Application struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	JobID    uint   `json:"jobId" gorm:"not null;uniqueIndex:idx_applications_job_user"`
	UserID   uint   `json:"userId" gorm:"not null;uniqueIndex:idx_applications_job_user"`
	JobTitle string `json:"jobTitle" gorm:"size:255;not null"`

	// Applicant snapshot.
	Name  string `json:"name" gorm:"size:255;not null"`
	Email string `json:"email" gorm:"size:255;not null"`

	// Optional fields supplied on the application form.
	Phone       string `json:"phone" gorm:"size:64"`
	Experience  string `json:"experience" gorm:"size:64"`
	LinkedIn    string `json:"linkedin" gorm:"size:255"`
	Portfolio   string `json:"portfolio" gorm:"size:255"`
	CoverLetter string `json:"coverLetter" gorm:"type:text"`

	Status    string    `json:"status" gorm:"size:16;not null;default:pending"`
	AppliedAt time.Time `json:"appliedAt" gorm:"not null"`
}

// ValidStatus reports whether s is one of the known application statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}
