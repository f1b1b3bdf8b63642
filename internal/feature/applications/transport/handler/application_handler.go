// Package handler provides the HTTP handlers for the applications feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careers_backend/internal/feature/applications/domain/entity"
	"careers_backend/internal/feature/applications/transport/http/dto"
	"careers_backend/internal/feature/applications/usecase"
	jwtmw "careers_backend/internal/platform/jwt"
)

// ApplicationsUsecase defines the application operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ApplicationsUsecase interface {
	Apply(ctx context.Context, userID, jobID uint, fields usecase.ApplicationFields) (*entity.Application, error)
	ListAll(ctx context.Context) ([]entity.Application, error)
	ListMine(ctx context.Context, userID uint) ([]entity.Application, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*entity.Application, error)
}

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	apps ApplicationsUsecase
}

// NewApplicationHandler creates a new ApplicationHandler instance.
func NewApplicationHandler(apps ApplicationsUsecase) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Apply handles POST /applications for an authenticated applicant.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	fields := usecase.ApplicationFields{
		Phone:       req.Phone,
		Experience:  req.Experience,
		LinkedIn:    req.LinkedIn,
		Portfolio:   req.Portfolio,
		CoverLetter: req.CoverLetter,
	}
	app, err := h.apps.Apply(c.Request.Context(), userID, req.JobID, fields)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		case errors.Is(err, usecase.ErrAlreadyApplied):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrAdminCannotApply):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("apply failed", "error", err, "user_id", userID, "job_id", req.JobID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit application"})
		}
		return
	}

	slog.Info("application submitted", "application_id", app.ID, "user_id", userID, "job_id", req.JobID)
	c.JSON(http.StatusCreated, app)
}

// ListMine handles GET /applications/mine for the applicant dashboard.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	apps, err := h.apps.ListMine(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list own applications failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListAll handles GET /applications for the admin console.
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.apps.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("list applications failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateStatus handles PATCH /applications/:id/status (admin only).
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	app, err := h.apps.UpdateStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("update application status failed", "error", err, "application_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		}
		return
	}

	slog.Info("application status updated", "application_id", app.ID, "status", app.Status)
	c.JSON(http.StatusOK, app)
}

// currentUserID extracts the authenticated user's ID set by the JWT
// middleware, writing a 401 response when it is missing.
func currentUserID(c *gin.Context) (uint, bool) {
	id, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	userID, ok := id.(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	return userID, true
}
