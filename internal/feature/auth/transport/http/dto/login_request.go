package dto

// LoginReq represents the request body for the /auth/login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshReq represents the request body for the /auth/refresh endpoint.
type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutReq represents the request body for the /auth/logout endpoint.
// The token is optional so a client with lost state can still log out.
type LogoutReq struct {
	RefreshToken string `json:"refreshToken"`
}
