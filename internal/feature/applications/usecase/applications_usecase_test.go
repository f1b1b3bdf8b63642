package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careers_backend/internal/feature/applications/domain/entity"
	authentity "careers_backend/internal/feature/auth/domain/entity"
	authusecase "careers_backend/internal/feature/auth/usecase"
	jobsentity "careers_backend/internal/feature/jobs/domain/entity"
	jobsusecase "careers_backend/internal/feature/jobs/usecase"
)

// mockApplicationRepository is an in-memory implementation of the
// ApplicationRepository interface.
type mockApplicationRepository struct {
	apps   []entity.Application
	nextID uint

	CreateFunc       func(ctx context.Context, app *entity.Application) error
	UpdateStatusFunc func(ctx context.Context, id uint, status string) error
}

func newMockApplicationRepository() *mockApplicationRepository {
	return &mockApplicationRepository{nextID: 1}
}

func (m *mockApplicationRepository) Create(ctx context.Context, app *entity.Application) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, app)
	}
	app.ID = m.nextID
	m.nextID++
	m.apps = append(m.apps, *app)
	return nil
}

func (m *mockApplicationRepository) ExistsByJobAndUser(ctx context.Context, jobID, userID uint) (bool, error) {
	for _, a := range m.apps {
		if a.JobID == jobID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockApplicationRepository) ListAll(ctx context.Context) ([]entity.Application, error) {
	return m.apps, nil
}

func (m *mockApplicationRepository) ListByUserID(ctx context.Context, userID uint) ([]entity.Application, error) {
	var out []entity.Application
	for _, a := range m.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id uint) (*entity.Application, error) {
	for i := range m.apps {
		if m.apps[i].ID == id {
			app := m.apps[i]
			return &app, nil
		}
	}
	return nil, ErrApplicationNotFound
}

func (m *mockApplicationRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	for i := range m.apps {
		if m.apps[i].ID == id {
			m.apps[i].Status = status
			return nil
		}
	}
	return ErrApplicationNotFound
}

// mockJobFinder is a mock implementation of the JobFinder interface.
type mockJobFinder struct {
	jobs map[uint]*jobsentity.Job
}

func (m *mockJobFinder) FindByID(ctx context.Context, id uint) (*jobsentity.Job, error) {
	if job, ok := m.jobs[id]; ok {
		return job, nil
	}
	return nil, jobsusecase.ErrJobNotFound
}

// mockUserFinder is a mock implementation of the UserFinder interface.
type mockUserFinder struct {
	users map[uint]*authentity.User
}

func (m *mockUserFinder) FindByID(ctx context.Context, id uint) (*authentity.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, authusecase.ErrUserNotFound
}

func fixtures() (*mockApplicationRepository, *mockJobFinder, *mockUserFinder) {
	repo := newMockApplicationRepository()
	jobs := &mockJobFinder{jobs: map[uint]*jobsentity.Job{
		1: {ID: 1, Title: "Backend Engineer", Active: true},
		2: {ID: 2, Title: "Retired Role", Active: false},
	}}
	users := &mockUserFinder{users: map[uint]*authentity.User{
		10: {ID: 10, Name: "Jane", Email: "jane@example.com", Role: authentity.RoleApplicant},
		99: {ID: 99, Name: "Admin", Email: "admin@quantumlogics.io", Role: authentity.RoleAdmin},
	}}
	return repo, jobs, users
}

func TestApplicationsUsecase_Apply(t *testing.T) {
	t.Run("snapshots job title and applicant identity", func(t *testing.T) {
		repo, jobs, users := fixtures()
		uc := NewApplicationsUsecase(repo, jobs, users)

		app, err := uc.Apply(context.Background(), 10, 1, ApplicationFields{
			Phone:       "+1-555-0100",
			CoverLetter: "Please hire me.",
		})

		require.NoError(t, err, "unexpected error")
		assert.Equal(t, "Backend Engineer", app.JobTitle, "job title should be snapshotted")
		assert.Equal(t, "Jane", app.Name, "applicant name should be snapshotted")
		assert.Equal(t, "jane@example.com", app.Email)
		assert.Equal(t, entity.StatusPending, app.Status, "new applications start pending")
		assert.False(t, app.AppliedAt.IsZero(), "AppliedAt should be set")
	})

	t.Run("second application to the same job is rejected", func(t *testing.T) {
		repo, jobs, users := fixtures()
		uc := NewApplicationsUsecase(repo, jobs, users)

		_, err := uc.Apply(context.Background(), 10, 1, ApplicationFields{})
		require.NoError(t, err)

		_, err = uc.Apply(context.Background(), 10, 1, ApplicationFields{})

		assert.ErrorIs(t, err, ErrAlreadyApplied)
		assert.Len(t, repo.apps, 1, "only one application may be persisted")
	})

	t.Run("same user may apply to a different job", func(t *testing.T) {
		repo, jobs, users := fixtures()
		jobs.jobs[3] = &jobsentity.Job{ID: 3, Title: "Another Role", Active: true}
		uc := NewApplicationsUsecase(repo, jobs, users)

		_, err := uc.Apply(context.Background(), 10, 1, ApplicationFields{})
		require.NoError(t, err)

		_, err = uc.Apply(context.Background(), 10, 3, ApplicationFields{})

		assert.NoError(t, err)
		assert.Len(t, repo.apps, 2)
	})

	t.Run("unknown job returns ErrJobNotFound", func(t *testing.T) {
		repo, jobs, users := fixtures()
		uc := NewApplicationsUsecase(repo, jobs, users)

		_, err := uc.Apply(context.Background(), 10, 999, ApplicationFields{})

		assert.ErrorIs(t, err, ErrJobNotFound)
		assert.Empty(t, repo.apps)
	})

	t.Run("inactive job is treated as not found", func(t *testing.T) {
		repo, jobs, users := fixtures()
		uc := NewApplicationsUsecase(repo, jobs, users)

		_, err := uc.Apply(context.Background(), 10, 2, ApplicationFields{})

		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("admin callers cannot apply", func(t *testing.T) {
		repo, jobs, users := fixtures()
		uc := NewApplicationsUsecase(repo, jobs, users)

		_, err := uc.Apply(context.Background(), 99, 1, ApplicationFields{})

		assert.ErrorIs(t, err, ErrAdminCannotApply)
		assert.Empty(t, repo.apps)
	})

	t.Run("unknown applicant fails validation", func(t *testing.T) {
		repo, jobs, users := fixtures()
		uc := NewApplicationsUsecase(repo, jobs, users)

		_, err := uc.Apply(context.Background(), 12345, 1, ApplicationFields{})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestApplicationsUsecase_UpdateStatus(t *testing.T) {
	seed := func(t *testing.T) (*ApplicationsUsecase, *mockApplicationRepository) {
		t.Helper()
		repo, jobs, users := fixtures()
		uc := NewApplicationsUsecase(repo, jobs, users)
		_, err := uc.Apply(context.Background(), 10, 1, ApplicationFields{})
		require.NoError(t, err)
		return uc, repo
	}

	t.Run("moves the application to a valid status", func(t *testing.T) {
		uc, repo := seed(t)

		app, err := uc.UpdateStatus(context.Background(), 1, entity.StatusReviewed)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusReviewed, app.Status)
		assert.Equal(t, entity.StatusReviewed, repo.apps[0].Status, "status must be persisted")
	})

	t.Run("unknown status is rejected before any write", func(t *testing.T) {
		uc, repo := seed(t)
		writeCalled := false
		repo.UpdateStatusFunc = func(ctx context.Context, id uint, status string) error {
			writeCalled = true
			return nil
		}

		_, err := uc.UpdateStatus(context.Background(), 1, "archived")

		assert.ErrorIs(t, err, ErrValidation)
		assert.False(t, writeCalled, "repository should not be touched")
		assert.Equal(t, entity.StatusPending, repo.apps[0].Status, "record must be unchanged")
	})

	t.Run("unknown application returns ErrApplicationNotFound", func(t *testing.T) {
		uc, _ := seed(t)

		_, err := uc.UpdateStatus(context.Background(), 999, entity.StatusAccepted)

		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestApplicationsUsecase_ListMine(t *testing.T) {
	repo, jobs, users := fixtures()
	users.users[11] = &authentity.User{ID: 11, Name: "Ken", Email: "ken@example.com", Role: authentity.RoleApplicant}
	uc := NewApplicationsUsecase(repo, jobs, users)

	_, err := uc.Apply(context.Background(), 10, 1, ApplicationFields{})
	require.NoError(t, err)
	_, err = uc.Apply(context.Background(), 11, 1, ApplicationFields{})
	require.NoError(t, err)

	mine, err := uc.ListMine(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, mine, 1, "only the caller's applications are returned")
	assert.Equal(t, uint(10), mine[0].UserID)
}
