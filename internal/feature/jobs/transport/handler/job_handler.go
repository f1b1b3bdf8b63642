// Package handler provides the HTTP handlers for the jobs feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careers_backend/internal/feature/jobs/domain/entity"
	"careers_backend/internal/feature/jobs/transport/http/dto"
	"careers_backend/internal/feature/jobs/usecase"
)

// JobsUsecase defines the job operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type JobsUsecase interface {
	List(ctx context.Context, activeOnly bool) ([]entity.Job, error)
	Get(ctx context.Context, id uint) (*entity.Job, error)
	Create(ctx context.Context, input usecase.JobInput) (*entity.Job, error)
	Update(ctx context.Context, id uint, input usecase.JobInput) (*entity.Job, error)
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (*entity.Job, error)
}

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	jobs JobsUsecase
}

// NewJobHandler creates a new JobHandler instance.
func NewJobHandler(jobs JobsUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// ListPublic handles GET /jobs and returns active postings only.
func (h *JobHandler) ListPublic(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context(), true)
	if err != nil {
		slog.Error("list jobs failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListAll handles GET /jobs/all for the admin console, including inactive postings.
func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context(), false)
	if err != nil {
		slog.Error("list all jobs failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get handles GET /jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "get job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create handles POST /jobs (admin only).
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.JobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), jobInput(req))
	if err != nil {
		h.renderError(c, err, "create job")
		return
	}

	slog.Info("job created", "job_id", job.ID, "title", job.Title)
	c.JSON(http.StatusCreated, job)
}

// Update handles PUT /jobs/:id (admin only).
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	var req dto.JobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), id, jobInput(req))
	if err != nil {
		h.renderError(c, err, "update job")
		return
	}

	slog.Info("job updated", "job_id", job.ID)
	c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /jobs/:id (admin only).
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "delete job")
		return
	}

	slog.Info("job deleted", "job_id", id)
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// SetActive handles PUT /jobs/:id/active (admin only).
func (h *JobHandler) SetActive(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	var req dto.SetActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	job, err := h.jobs.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.renderError(c, err, "set job active")
		return
	}

	slog.Info("job visibility changed", "job_id", job.ID, "active", job.Active)
	c.JSON(http.StatusOK, job)
}

// renderError maps usecase errors onto HTTP statuses.
func (h *JobHandler) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error(op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": op + " failed"})
	}
}

// jobID parses the :id path parameter, writing a 400 response on failure.
func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return 0, false
	}
	return uint(id), true
}

// jobInput converts the request DTO into the usecase input.
// A missing active flag defaults to a visible posting.
func jobInput(req dto.JobReq) usecase.JobInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return usecase.JobInput{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		Active:       active,
	}
}
