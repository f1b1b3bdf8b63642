package db

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authentity "careers_backend/internal/feature/auth/domain/entity"
	jobsentity "careers_backend/internal/feature/jobs/domain/entity"
)

// Seed admin defaults. The password is overridable via ADMIN_PASSWORD and
// only used the first time the store is initialized.
const (
	seedAdminName    = "Admin"
	seedAdminEmail   = "admin@quantumlogics.io"
	defaultAdminPass = "admin123"
	envKeyAdminPass  = "ADMIN_PASSWORD"
)

// EnsureSeedData initializes an empty store: it inserts the single
// administrator account when no admin exists, and the default job postings
// when the jobs table is empty. It is idempotent and runs once at startup.
func EnsureSeedData(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if err := seedJobs(db); err != nil {
		return fmt.Errorf("failed to seed jobs: %w", err)
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&authentity.User{}).
		Where("role = ?", authentity.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv(envKeyAdminPass)
	if password == "" {
		password = defaultAdminPass
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&authentity.User{
		Name:     seedAdminName,
		Email:    seedAdminEmail,
		Password: string(hashed),
		Role:     authentity.RoleAdmin,
	}).Error
}

func seedJobs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&jobsentity.Job{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Create(defaultJobs()).Error
}

// defaultJobs returns the postings a fresh careers site starts with.
func defaultJobs() []jobsentity.Job {
	return []jobsentity.Job{
		{
			Title:       "Senior Full Stack Engineer",
			Department:  "Engineering",
			Location:    "Lahore, Pakistan / Remote",
			Type:        "Full-time",
			Salary:      "$3,000 – $5,000/mo",
			Description: "Lead the architecture and development of scalable web applications. You'll work closely with product and design teams to deliver world-class software.",
			Requirements: []string{
				"5+ years experience with React/Node.js",
				"Strong database design skills (MongoDB, PostgreSQL)",
				"Experience with cloud platforms (AWS/GCP)",
				"Excellent communication skills",
			},
			Active:   true,
			PostedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "UI/UX Designer",
			Department:  "Design",
			Location:    "Remote",
			Type:        "Full-time",
			Salary:      "$2,000 – $3,500/mo",
			Description: "Craft intuitive, beautiful user experiences for our product suite. You'll conduct user research, create wireframes, and work hand-in-hand with our engineering team.",
			Requirements: []string{
				"3+ years UX/UI design experience",
				"Proficiency in Figma and Adobe Creative Suite",
				"Portfolio showcasing strong design thinking",
				"Experience with design systems",
			},
			Active:   true,
			PostedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "DevOps Engineer",
			Department:  "Infrastructure",
			Location:    "Hybrid",
			Type:        "Full-time",
			Salary:      "$2,800 – $4,500/mo",
			Description: "Maintain, optimize, and scale our cloud infrastructure. You'll automate deployments, monitor system health, and champion engineering best practices.",
			Requirements: []string{
				"Strong Linux administration skills",
				"Experience with Kubernetes and Docker",
				"CI/CD pipeline expertise",
				"Security-first mindset",
			},
			Active:   true,
			PostedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}
