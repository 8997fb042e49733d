package dto

import "time"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Session is what Register and Login hand back to the delivery layer. The
// refresh token never appears in a JSON body for Refresh; delivery places
// it in the HttpOnly cookie.
type Session struct {
	PublicID              string
	Email                 string
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type RegisterResponse struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
	AccessToken         string `json:"accessToken"`
	RefreshTokenExpired string `json:"refreshTokenExpired"`
	Message             string `json:"message"`
}

type LoginResponse struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	AccessToken         string `json:"accessToken"`
	RefreshToken        string `json:"refreshToken"`
	RefreshTokenExpired string `json:"refreshTokenExpired"`
	Message             string `json:"message"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}
