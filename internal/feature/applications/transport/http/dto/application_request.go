// Package dto defines data transfer objects for the applications feature's HTTP transport layer.
package dto

// ApplyReq represents the request body for the POST /applications endpoint.
// The applicant's name and email are not accepted from the client; they are
// snapshotted server-side from the authenticated user.
type ApplyReq struct {
	JobID       uint   `json:"jobId" binding:"required"`
	Phone       string `json:"phone"`
	Experience  string `json:"experience"`
	LinkedIn    string `json:"linkedin"`
	Portfolio   string `json:"portfolio"`
	CoverLetter string `json:"coverLetter"`
}

// UpdateStatusReq represents the request body for PATCH /applications/:id/status.
type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}
