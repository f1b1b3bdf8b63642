// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appshandler "careers_backend/internal/feature/applications/transport/handler"
	authhandler "careers_backend/internal/feature/auth/transport/handler"
	jobshandler "careers_backend/internal/feature/jobs/transport/handler"
	"careers_backend/internal/platform/http/handler"
	jwtmw "careers_backend/internal/platform/jwt"
)

// NewRouter builds the Gin engine with three route tiers: public, authenticated
// and admin. The frontend SPA runs on a separate origin, so CORS is enabled.
func NewRouter(auth *authhandler.AuthHandler, jobs *jobshandler.JobHandler,
	apps *appshandler.ApplicationHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Public routes
	r.GET("/healthz", handler.Health)
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	r.POST("/auth/refresh", auth.Refresh)
	r.GET("/jobs", jobs.ListPublic)
	r.GET("/jobs/:id", jobs.Get)

	// Authenticated routes (bearer token required)
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.POST("/auth/logout", auth.Logout)
		authed.POST("/applications", apps.Apply)
		authed.GET("/applications/mine", apps.ListMine)
	}

	// Admin routes (bearer token with admin role required)
	admin := r.Group("/")
	admin.Use(jwtmw.AuthRequired(), jwtmw.AdminRequired())
	{
		admin.GET("/jobs/all", jobs.ListAll)
		admin.POST("/jobs", jobs.Create)
		admin.PUT("/jobs/:id", jobs.Update)
		admin.DELETE("/jobs/:id", jobs.Delete)
		admin.PUT("/jobs/:id/active", jobs.SetActive)
		admin.GET("/applications", apps.ListAll)
		admin.PATCH("/applications/:id/status", apps.UpdateStatus)
		admin.GET("/users", auth.ListUsers)
	}

	return r
}
