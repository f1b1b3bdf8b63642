package dto

import "careers_backend/internal/feature/auth/domain/entity"

// AuthResponse is returned by /auth/register and /auth/login.
// The user record serializes without its password hash.
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
}

// TokenResponse is returned by /auth/refresh.
type TokenResponse struct {
	Token string `json:"token"`
}
