// Package entity defines the domain entities for the jobs feature.
package entity

import "time"

// Departments a posting can belong to.
var Departments = []string{
	"Engineering",
	"Design",
	"Infrastructure",
	"Product",
	"Marketing",
	"Operations",
}

// Types of employment a posting can offer.
var Types = []string{
	"Full-time",
	"Part-time",
	"Contract",
	"Internship",
	"Remote",
}

// Job represents a job posting on the careers site.
// Requirements are stored as a JSON column rather than a join table since
// they are an ordered list of free-text bullets owned entirely by the job.
type Job struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Department   string    `json:"department" gorm:"size:64;not null"`
	Location     string    `json:"location" gorm:"size:255;not null"`
	Type         string    `json:"type" gorm:"size:32;not null"`
	Salary       string    `json:"salary" gorm:"size:128"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Requirements []string  `json:"requirements" gorm:"serializer:json"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	PostedAt     time.Time `json:"postedAt" gorm:"not null"`
}

// ValidDepartment reports whether d is one of the known departments.
func ValidDepartment(d string) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

// ValidType reports whether t is one of the known employment types.
func ValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}
