package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careers_backend/internal/feature/jobs/domain/entity"
	"careers_backend/internal/feature/jobs/usecase"
)

// mockJobsUsecase is a mock implementation of the JobsUsecase interface.
type mockJobsUsecase struct {
	ListFunc      func(ctx context.Context, activeOnly bool) ([]entity.Job, error)
	GetFunc       func(ctx context.Context, id uint) (*entity.Job, error)
	CreateFunc    func(ctx context.Context, input usecase.JobInput) (*entity.Job, error)
	UpdateFunc    func(ctx context.Context, id uint, input usecase.JobInput) (*entity.Job, error)
	DeleteFunc    func(ctx context.Context, id uint) error
	SetActiveFunc func(ctx context.Context, id uint, active bool) (*entity.Job, error)
}

func (m *mockJobsUsecase) List(ctx context.Context, activeOnly bool) ([]entity.Job, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockJobsUsecase) Get(ctx context.Context, id uint) (*entity.Job, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrJobNotFound
}

func (m *mockJobsUsecase) Create(ctx context.Context, input usecase.JobInput) (*entity.Job, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return nil, usecase.ErrValidation
}

func (m *mockJobsUsecase) Update(ctx context.Context, id uint, input usecase.JobInput) (*entity.Job, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}
	return nil, usecase.ErrJobNotFound
}

func (m *mockJobsUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return usecase.ErrJobNotFound
}

func (m *mockJobsUsecase) SetActive(ctx context.Context, id uint, active bool) (*entity.Job, error) {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active)
	}
	return nil, usecase.ErrJobNotFound
}

func jobBody() gin.H {
	return gin.H{
		"title":        "Backend Engineer",
		"department":   "Engineering",
		"location":     "Remote",
		"type":         "Full-time",
		"salary":       "$4,000/mo",
		"description":  "Build things.",
		"requirements": []string{"Go"},
	}
}

func TestJobHandler_ListPublic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotActiveOnly bool
	mockUC := &mockJobsUsecase{
		ListFunc: func(ctx context.Context, activeOnly bool) ([]entity.Job, error) {
			gotActiveOnly = activeOnly
			return []entity.Job{{ID: 1, Title: "Job", Active: true}}, nil
		},
	}
	h := NewJobHandler(mockUC)
	router := gin.New()
	router.GET("/jobs", h.ListPublic)

	req, _ := http.NewRequest(http.MethodGet, "/jobs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotActiveOnly, "public listing must request active jobs only")
}

func TestJobHandler_ListAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotActiveOnly bool
	mockUC := &mockJobsUsecase{
		ListFunc: func(ctx context.Context, activeOnly bool) ([]entity.Job, error) {
			gotActiveOnly = activeOnly
			return nil, nil
		},
	}
	h := NewJobHandler(mockUC)
	router := gin.New()
	router.GET("/jobs/all", h.ListAll)

	req, _ := http.NewRequest(http.MethodGet, "/jobs/all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, gotActiveOnly, "admin listing must include inactive jobs")
}

func TestJobHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           gin.H
		createFunc     func(ctx context.Context, input usecase.JobInput) (*entity.Job, error)
		expectedStatus int
	}{
		{
			name: "success",
			body: jobBody(),
			createFunc: func(ctx context.Context, input usecase.JobInput) (*entity.Job, error) {
				return &entity.Job{ID: 1, Title: input.Title}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title rejected by binding",
			body:           gin.H{"department": "Engineering"},
			createFunc:     nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "usecase validation error",
			body: jobBody(),
			createFunc: func(ctx context.Context, input usecase.JobInput) (*entity.Job, error) {
				return nil, usecase.ErrValidation
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockJobsUsecase{CreateFunc: tt.createFunc}
			h := NewJobHandler(mockUC)
			router := gin.New()
			router.POST("/jobs", h.Create)

			data, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/jobs", bytes.NewBuffer(data))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestJobHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown job returns 404", func(t *testing.T) {
		h := NewJobHandler(&mockJobsUsecase{})
		router := gin.New()
		router.PUT("/jobs/:id", h.Update)

		data, _ := json.Marshal(jobBody())
		req, _ := http.NewRequest(http.MethodPut, "/jobs/99", bytes.NewBuffer(data))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		h := NewJobHandler(&mockJobsUsecase{})
		router := gin.New()
		router.PUT("/jobs/:id", h.Update)

		req, _ := http.NewRequest(http.MethodPut, "/jobs/abc", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJobHandler_SetActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the flag through", func(t *testing.T) {
		var gotActive bool
		mockUC := &mockJobsUsecase{
			SetActiveFunc: func(ctx context.Context, id uint, active bool) (*entity.Job, error) {
				gotActive = active
				return &entity.Job{ID: id, Active: active}, nil
			},
		}
		h := NewJobHandler(mockUC)
		router := gin.New()
		router.PUT("/jobs/:id/active", h.SetActive)

		req, _ := http.NewRequest(http.MethodPut, "/jobs/1/active", bytes.NewBufferString(`{"active": false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, gotActive)
	})

	t.Run("missing flag rejected by binding", func(t *testing.T) {
		h := NewJobHandler(&mockJobsUsecase{})
		router := gin.New()
		router.PUT("/jobs/:id/active", h.SetActive)

		req, _ := http.NewRequest(http.MethodPut, "/jobs/1/active", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJobHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockJobsUsecase{
		DeleteFunc: func(ctx context.Context, id uint) error {
			require.Equal(t, uint(5), id)
			return nil
		},
	}
	h := NewJobHandler(mockUC)
	router := gin.New()
	router.DELETE("/jobs/:id", h.Delete)

	req, _ := http.NewRequest(http.MethodDelete, "/jobs/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
