// Package adapters provides repository implementations for the jobs feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"careers_backend/internal/feature/jobs/domain/entity"
	"careers_backend/internal/feature/jobs/usecase"
)

// jobGorm is a GORM implementation of the JobRepository interface.
type jobGorm struct {
	db *gorm.DB
}

var _ usecase.JobRepository = (*jobGorm)(nil)

// NewJobRepository creates a new jobGorm instance with the given DB connection.
func NewJobRepository(db *gorm.DB) *jobGorm {
	return &jobGorm{db: db}
}

// List returns job postings newest first, optionally active only.
func (r *jobGorm) List(ctx context.Context, activeOnly bool) ([]entity.Job, error) {
	query := r.db.WithContext(ctx).Order("posted_at DESC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var jobs []entity.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByID retrieves a job by ID.
// It returns usecase.ErrJobNotFound when no job matches.
func (r *jobGorm) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	var job entity.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Create adds a job posting to the database.
func (r *jobGorm) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Save writes the full state of an existing posting.
func (r *jobGorm) Save(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes a job posting.
// It returns usecase.ErrJobNotFound when no row was deleted.
func (r *jobGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Job{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrJobNotFound
	}
	return nil
}
