package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"careers_backend/internal/app/di"
	"careers_backend/internal/app/router"
	appsadapters "careers_backend/internal/feature/applications/adapters"
	appshandler "careers_backend/internal/feature/applications/transport/handler"
	appsusecase "careers_backend/internal/feature/applications/usecase"
	authadapters "careers_backend/internal/feature/auth/adapters"
	authhandler "careers_backend/internal/feature/auth/transport/handler"
	authusecase "careers_backend/internal/feature/auth/usecase"
	jobsadapters "careers_backend/internal/feature/jobs/adapters"
	jobshandler "careers_backend/internal/feature/jobs/transport/handler"
	jobsusecase "careers_backend/internal/feature/jobs/usecase"
	platformdb "careers_backend/internal/platform/db"
	jwtmw "careers_backend/internal/platform/jwt"
	platformredis "careers_backend/internal/platform/redis"
	"careers_backend/internal/shared/ratelimiter"
)

const accessTokenTTL = 15 * time.Minute

func main() {
	// Load .env file if present; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// db
	db := platformdb.Open()
	if err := platformdb.EnsureSeedData(db); err != nil {
		log.Fatalf("failed to seed store: %v", err)
	}

	// Redis (optional; sessions fall back to the database)
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions stored in database.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRET check
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	jobRepo := jobsadapters.NewJobRepository(db)
	appRepo := appsadapters.NewApplicationRepository(db)

	// Usecase
	tokenGen := jwtmw.NewGenerator(secret, accessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokenGen)
	jobsUC := jobsusecase.NewJobsUsecase(jobRepo)
	appsUC := appsusecase.NewApplicationsUsecase(appRepo, jobRepo, userRepo)

	// Handler
	loginLimiter := ratelimiter.New(10, time.Minute)
	authH := authhandler.NewAuthHandler(authUC, loginLimiter)
	jobsH := jobshandler.NewJobHandler(jobsUC)
	appsH := appshandler.NewApplicationHandler(appsUC)

	r := router.NewRouter(authH, jobsH, appsH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
