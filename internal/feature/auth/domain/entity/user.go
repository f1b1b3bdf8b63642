// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User roles. Registration always produces RoleApplicant; the single
// seeded administrator is the only account with RoleAdmin.
const (
	RoleApplicant = "applicant"
	RoleAdmin     = "admin"
)

// User represents a registered account in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `json:"id" gorm:"primaryKey"`

	// Name is the user's display name shown on applications.
	Name string `json:"name" gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It is stored lowercased and must be unique across all users.
	Email string `json:"email" gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext and is stripped from API responses.
	Password string `json:"-" gorm:"size:255;not null"`

	// Role is either "applicant" or "admin".
	Role string `json:"role" gorm:"size:16;not null;default:applicant"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"-"`
}

// IsAdmin returns true if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
