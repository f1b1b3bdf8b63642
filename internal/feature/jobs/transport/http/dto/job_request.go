// Package dto defines data transfer objects for the jobs feature's HTTP transport layer.
package dto

// JobReq represents the request body for creating or updating a job posting.
// Field-level validation beyond presence (enums, requirement filtering) lives
// in the usecase so it is enforced for every caller.
type JobReq struct {
	Title        string   `json:"title" binding:"required"`
	Department   string   `json:"department" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description" binding:"required"`
	Requirements []string `json:"requirements" binding:"required"`
	Active       *bool    `json:"active"`
}

// SetActiveReq represents the request body for toggling a posting's visibility.
type SetActiveReq struct {
	Active *bool `json:"active" binding:"required"`
}
