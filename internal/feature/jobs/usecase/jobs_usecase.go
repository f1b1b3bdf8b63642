package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"careers_backend/internal/feature/jobs/domain/entity"
)

// JobRepository abstracts the persistence layer for job postings.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type JobRepository interface {
	// List returns job postings ordered by posting time, newest first.
	// When activeOnly is true, inactive postings are excluded.
	List(ctx context.Context, activeOnly bool) ([]entity.Job, error)

	// FindByID retrieves a job by ID, returning ErrJobNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Job, error)

	// Create persists a new job posting.
	Create(ctx context.Context, job *entity.Job) error

	// Save writes the full state of an existing job posting.
	Save(ctx context.Context, job *entity.Job) error

	// Delete removes a job posting, returning ErrJobNotFound when absent.
	Delete(ctx context.Context, id uint) error
}

// JobInput is the validated payload for creating or updating a posting.
type JobInput struct {
	Title        string
	Department   string
	Location     string
	Type         string
	Salary       string
	Description  string
	Requirements []string
	Active       bool
}

// JobsUsecase provides the admin and public operations over job postings.
type JobsUsecase struct {
	repo JobRepository
}

// NewJobsUsecase creates a new JobsUsecase with the given repository.
func NewJobsUsecase(r JobRepository) *JobsUsecase {
	return &JobsUsecase{repo: r}
}

// List returns job postings, restricted to active ones when activeOnly is set.
func (u *JobsUsecase) List(ctx context.Context, activeOnly bool) ([]entity.Job, error) {
	return u.repo.List(ctx, activeOnly)
}

// Get returns a single job posting by ID.
func (u *JobsUsecase) Get(ctx context.Context, id uint) (*entity.Job, error) {
	return u.repo.FindByID(ctx, id)
}

// Create validates the input and persists a new posting.
func (u *JobsUsecase) Create(ctx context.Context, input JobInput) (*entity.Job, error) {
	job, err := buildJob(input)
	if err != nil {
		return nil, err
	}
	job.PostedAt = time.Now()
	if err := u.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update validates the input and replaces the stored posting's fields.
// The original posting time is preserved.
func (u *JobsUsecase) Update(ctx context.Context, id uint, input JobInput) (*entity.Job, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job, err := buildJob(input)
	if err != nil {
		return nil, err
	}
	job.ID = existing.ID
	job.PostedAt = existing.PostedAt

	if err := u.repo.Save(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a posting by ID.
func (u *JobsUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// SetActive toggles a posting's visibility on the public listing.
func (u *JobsUsecase) SetActive(ctx context.Context, id uint, active bool) (*entity.Job, error) {
	job, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Active = active
	if err := u.repo.Save(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// buildJob validates the input and assembles a job entity from it.
// Requirement entries are trimmed and empties dropped before persistence.
func buildJob(input JobInput) (*entity.Job, error) {
	title := strings.TrimSpace(input.Title)
	location := strings.TrimSpace(input.Location)
	description := strings.TrimSpace(input.Description)

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if !entity.ValidDepartment(input.Department) {
		return nil, fmt.Errorf("%w: unknown department %q", ErrValidation, input.Department)
	}
	if !entity.ValidType(input.Type) {
		return nil, fmt.Errorf("%w: unknown job type %q", ErrValidation, input.Type)
	}

	requirements := make([]string, 0, len(input.Requirements))
	for _, req := range input.Requirements {
		if req = strings.TrimSpace(req); req != "" {
			requirements = append(requirements, req)
		}
	}
	if len(requirements) == 0 {
		return nil, fmt.Errorf("%w: at least one requirement is required", ErrValidation)
	}

	return &entity.Job{
		Title:        title,
		Department:   input.Department,
		Location:     location,
		Type:         input.Type,
		Salary:       strings.TrimSpace(input.Salary),
		Description:  description,
		Requirements: requirements,
		Active:       input.Active,
	}, nil
}
