// Package db opens the backing store and owns schema migration and seeding.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appentity "careers_backend/internal/feature/applications/domain/entity"
	authadapters "careers_backend/internal/feature/auth/adapters"
	authentity "careers_backend/internal/feature/auth/domain/entity"
	jobsentity "careers_backend/internal/feature/jobs/domain/entity"
)

// Open connects to the backing store. With DB_HOST set it dials Postgres,
// retrying until a deadline; otherwise it falls back to a local SQLite file
// so the service runs without any external infrastructure.
//
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func Open() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	host := os.Getenv("DB_HOST")
	if host == "" {
		path := os.Getenv("CAREERS_DB_PATH")
		if path == "" {
			path = "careers.db"
		}
		db, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("failed to open sqlite store at %s: %v", path, err)
		}
		migrate(db)
		return db
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host,
		envOr("DB_PORT", "5432"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		envOr("DB_SSLMODE", "disable"),
	)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	migrate(db)
	return db
}

// migrate runs schema migration when enabled. SQLite always migrates since
// the file may be brand new; Postgres migrates only when RUN_MIGRATIONS=true.
func migrate(db *gorm.DB) {
	if db.Dialector.Name() != "sqlite" && os.Getenv("RUN_MIGRATIONS") != "true" {
		return
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}

// Migrate creates or updates the schema for every persisted collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&authadapters.SessionModel{},
		&jobsentity.Job{},
		&appentity.Application{},
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
