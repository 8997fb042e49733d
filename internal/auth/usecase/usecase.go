package usecase

import (
	"context"

	"skinthesia-backend/internal/auth/dto"
)

// AuthUsecase composes the credential store, token codec and refresh ledger
// into the three session flows plus per-request bearer validation.
type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.Session, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.Session, error)
	// Refresh exchanges a refresh token for a new access token. The ledger
	// record is left untouched on success; anomalies revoke it.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// ValidateAccessToken verifies a bearer token and re-confirms the
	// subject still exists, returning the authenticated identity.
	ValidateAccessToken(ctx context.Context, accessToken string) (publicID, email string, err error)
}
