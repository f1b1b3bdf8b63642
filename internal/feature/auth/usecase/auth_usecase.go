package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"careers_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6

	// sessionTTL is the lifetime of a refresh session.
	sessionTTL = 7 * 24 * time.Hour

	// maxSessionsPerUser caps live sessions per account; the oldest is evicted.
	maxSessionsPerUser = 5
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailTaken if a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]entity.User, error)
}

// TokenGenerator defines the interface for signed access token generation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	// GenerateToken creates a signed access token carrying the user's identity and role.
	GenerateToken(userID uint, email, role string) (string, error)
}

// LoginMeta carries client metadata recorded on the session for auditing.
type LoginMeta struct {
	UserAgent string
	IPAddress string
}

// TokenPair is the result of a successful login or registration.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase implements registration, login, token refresh and logout.
type AuthUsecase struct {
	users    UserRepository
	sessions SessionRepository
	tokens   TokenGenerator
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenGenerator) *AuthUsecase {
	return &AuthUsecase{users: users, sessions: sessions, tokens: tokens}
}

// Register creates a new applicant account and logs it in.
// Every registered user gets the applicant role; the seeded administrator
// is the only account that ever holds the admin role.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string, meta LoginMeta) (*entity.User, *TokenPair, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if email == "" {
		return nil, nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleApplicant,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := u.issueTokens(ctx, user, meta)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login authenticates a user and returns the user record with a token pair.
// To mitigate timing attacks, a bcrypt comparison runs even when the email
// is unknown, and the returned error never reveals which check failed.
func (u *AuthUsecase) Login(ctx context.Context, email, password string, meta LoginMeta) (*entity.User, *TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path when the
	// user does not exist.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := u.issueTokens(ctx, user, meta)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid session for a fresh access token.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if session.IsRevoked() {
		return "", ErrSessionRevoked
	}
	if session.IsExpired() {
		return "", ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Logout revokes the session for the given refresh token.
// An unknown token is treated as success since the client discards its
// local credentials either way.
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil && err != ErrSessionNotFound {
		return err
	}
	return nil
}

// ListUsers returns all registered users for the admin console.
func (u *AuthUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// issueTokens creates the access token and refresh session for a user,
// evicting the oldest session when the per-user cap is reached.
func (u *AuthUsecase) issueTokens(ctx context.Context, user *entity.User, meta LoginMeta) (*TokenPair, error) {
	access, err := u.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	count, err := u.sessions.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if count >= maxSessionsPerUser {
		if err := u.sessions.DeleteOldestByUserID(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &entity.Session{
		ID:        refresh,
		UserID:    user.ID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// newRefreshToken returns a 64-character hex string from a CSPRNG.
func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// normalizeEmail lowercases and trims an email for case-insensitive matching.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
