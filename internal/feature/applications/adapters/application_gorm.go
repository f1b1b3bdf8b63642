// Package adapters provides repository implementations for the applications feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"careers_backend/internal/feature/applications/domain/entity"
	"careers_backend/internal/feature/applications/usecase"
)

// applicationGorm is a GORM implementation of the ApplicationRepository interface.
type applicationGorm struct {
	db *gorm.DB
}

var _ usecase.ApplicationRepository = (*applicationGorm)(nil)

// NewApplicationRepository creates a new applicationGorm instance.
func NewApplicationRepository(db *gorm.DB) *applicationGorm {
	return &applicationGorm{db: db}
}

// Create adds an application to the database.
// The composite (job_id, user_id) unique index rejects duplicates even if a
// concurrent writer slipped past the usecase's check; that failure is
// translated to usecase.ErrAlreadyApplied.
func (r *applicationGorm) Create(ctx context.Context, app *entity.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

// ExistsByJobAndUser reports whether the user already applied to the job.
func (r *applicationGorm) ExistsByJobAndUser(ctx context.Context, jobID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListAll returns every application, newest first.
func (r *applicationGorm) ListAll(ctx context.Context) ([]entity.Application, error) {
	var apps []entity.Application
	if err := r.db.WithContext(ctx).Order("applied_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ListByUserID returns the user's applications, newest first.
func (r *applicationGorm) ListByUserID(ctx context.Context, userID uint) ([]entity.Application, error) {
	var apps []entity.Application
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// FindByID retrieves an application by ID.
// It returns usecase.ErrApplicationNotFound when no application matches.
func (r *applicationGorm) FindByID(ctx context.Context, id uint) (*entity.Application, error) {
	var app entity.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// UpdateStatus sets the status of an existing application.
// It returns usecase.ErrApplicationNotFound when no row was updated.
func (r *applicationGorm) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrApplicationNotFound
	}
	return nil
}
