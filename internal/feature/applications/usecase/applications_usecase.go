package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"careers_backend/internal/feature/applications/domain/entity"
	authentity "careers_backend/internal/feature/auth/domain/entity"
	authusecase "careers_backend/internal/feature/auth/usecase"
	jobsentity "careers_backend/internal/feature/jobs/domain/entity"
	jobsusecase "careers_backend/internal/feature/jobs/usecase"
)

// ApplicationRepository abstracts the persistence layer for applications.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ApplicationRepository interface {
	// Create persists a new application. It returns ErrAlreadyApplied when
	// the (job, user) unique index rejects the row.
	Create(ctx context.Context, app *entity.Application) error

	// ExistsByJobAndUser reports whether the user already applied to the job.
	ExistsByJobAndUser(ctx context.Context, jobID, userID uint) (bool, error)

	// ListAll returns every application, newest first.
	ListAll(ctx context.Context) ([]entity.Application, error)

	// ListByUserID returns the user's applications, newest first.
	ListByUserID(ctx context.Context, userID uint) ([]entity.Application, error)

	// FindByID retrieves an application by ID, returning
	// ErrApplicationNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Application, error)

	// UpdateStatus sets the status of an existing application.
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// JobFinder resolves job postings for the existence check and title snapshot.
// Satisfied by the jobs feature's repository adapter.
type JobFinder interface {
	FindByID(ctx context.Context, id uint) (*jobsentity.Job, error)
}

// UserFinder resolves the applicant for the name/email snapshot.
// Satisfied by the auth feature's repository adapter.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// ApplicationFields carries the optional form fields of an application.
type ApplicationFields struct {
	Phone       string
	Experience  string
	LinkedIn    string
	Portfolio   string
	CoverLetter string
}

// ApplicationsUsecase orchestrates the application workflow: existence
// check, duplicate check, snapshot and persist.
type ApplicationsUsecase struct {
	repo  ApplicationRepository
	jobs  JobFinder
	users UserFinder

	// mu serializes Apply's check-then-create so two near-simultaneous
	// applications for the same (user, job) pair cannot both pass the
	// duplicate check. The unique index backs this up at the storage layer.
	mu sync.Mutex
}

// NewApplicationsUsecase creates a new ApplicationsUsecase instance.
func NewApplicationsUsecase(repo ApplicationRepository, jobs JobFinder, users UserFinder) *ApplicationsUsecase {
	return &ApplicationsUsecase{repo: repo, jobs: jobs, users: users}
}

// Apply submits an application for the given user to the given job.
// The job must exist and be accepting applications; administrators may not
// apply; a user can hold at most one application per job. The job title and
// the applicant's name and email are snapshotted onto the new record.
func (u *ApplicationsUsecase) Apply(ctx context.Context, userID, jobID uint, fields ApplicationFields) (*entity.Application, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown applicant", ErrValidation)
		}
		return nil, err
	}
	if user.IsAdmin() {
		return nil, ErrAdminCannotApply
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobsusecase.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	// Inactive postings are invisible to applicants.
	if !job.Active {
		return nil, ErrJobNotFound
	}

	exists, err := u.repo.ExistsByJobAndUser(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	app := &entity.Application{
		JobID:       job.ID,
		UserID:      user.ID,
		JobTitle:    job.Title,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       fields.Phone,
		Experience:  fields.Experience,
		LinkedIn:    fields.LinkedIn,
		Portfolio:   fields.Portfolio,
		CoverLetter: fields.CoverLetter,
		Status:      entity.StatusPending,
		AppliedAt:   time.Now(),
	}
	if err := u.repo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListAll returns every application for the admin console.
func (u *ApplicationsUsecase) ListAll(ctx context.Context) ([]entity.Application, error) {
	return u.repo.ListAll(ctx)
}

// ListMine returns the calling user's applications.
func (u *ApplicationsUsecase) ListMine(ctx context.Context, userID uint) ([]entity.Application, error) {
	return u.repo.ListByUserID(ctx, userID)
}

// UpdateStatus moves an application to a new status.
// Unknown statuses are rejected before any read or write happens, so an
// invalid request leaves the record untouched.
func (u *ApplicationsUsecase) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Application, error) {
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	app, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	app.Status = status
	return app, nil
}
