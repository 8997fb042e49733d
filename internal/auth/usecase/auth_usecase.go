package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"skinthesia-backend/internal/auth/domain"
	"skinthesia-backend/internal/auth/dto"
	"skinthesia-backend/internal/auth/repository"
	"skinthesia-backend/internal/auth/token"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo      repository.UserRepository
	tokenRepo     repository.RefreshTokenRepository
	codec         *token.Codec
	refreshExpiry time.Duration
}

func NewAuthUsecase(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository, codec *token.Codec, refreshExpiry time.Duration) AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		codec:         codec,
		refreshExpiry: refreshExpiry,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.Session, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateIdentity
	}

	hash, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: hash,
		Salt:         repository.SaltFromHash(hash),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.openSession(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.Session, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password produce the same error.
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := u.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.TouchUpdatedAt(ctx, user.PublicID); err != nil {
		log.Printf("failed to touch updated_at for user %s: %v", user.PublicID, err)
	}

	return session, nil
}

// openSession issues a fresh token pair and rotates the user's ledger entry,
// invalidating any prior session.
func (u *authUsecase) openSession(ctx context.Context, user *domain.User) (*dto.Session, error) {
	pair, err := u.codec.IssuePair(user.PublicID, user.Email)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(u.refreshExpiry)
	if err := u.tokenRepo.Replace(ctx, user.PublicID, pair.RefreshToken, expiresAt); err != nil {
		return nil, err
	}

	return &dto.Session{
		PublicID:              user.PublicID,
		Email:                 user.Email,
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		RefreshTokenExpiresAt: expiresAt,
		CreatedAt:             user.CreatedAt,
		UpdatedAt:             user.UpdatedAt,
	}, nil
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrMissingRefreshToken
	}

	claims, err := u.codec.Verify(refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			// The signature was fine until the clock ran out, so the claims
			// still name the subject; clean up its ledger row. Cleanup is
			// best-effort and never masks the expiry verdict.
			if decoded := u.codec.DecodeUnsafe(refreshToken); decoded != nil && decoded.PublicID != "" {
				if err := u.tokenRepo.Delete(ctx, decoded.PublicID, refreshToken); err != nil {
					log.Printf("failed to clean up expired refresh token for user %s: %v", decoded.PublicID, err)
				}
			}
			return "", domain.ErrRefreshTokenExpired
		}
		// A bad signature does not trustworthily name a subject; no
		// ledger mutation.
		return "", domain.ErrRefreshTokenInvalid
	}

	record, err := u.tokenRepo.Find(ctx, claims.PublicID, refreshToken)
	if err != nil {
		return "", err
	}
	if record == nil {
		// A verified token that isn't the currently-recognized one means a
		// rotated-out token is being replayed. Revoke everything for the
		// user and force a re-login.
		log.Printf("refresh token for user %s verified but not in ledger, revoking", claims.PublicID)
		if err := u.tokenRepo.DeleteByUser(ctx, claims.PublicID); err != nil {
			log.Printf("failed to revoke refresh tokens for user %s: %v", claims.PublicID, err)
		}
		return "", domain.ErrRefreshTokenInvalid
	}

	// The ledger keeps its own clock. It should agree with the token's
	// embedded expiry; when it doesn't, expired wins.
	if time.Now().After(record.ExpiresAt) {
		if err := u.tokenRepo.Delete(ctx, claims.PublicID, refreshToken); err != nil {
			log.Printf("failed to delete expired refresh token for user %s: %v", claims.PublicID, err)
		}
		return "", domain.ErrRefreshTokenExpired
	}

	// New access token only; the refresh token and its record stay put.
	return u.codec.IssueAccess(claims.PublicID, claims.Email)
}

func (u *authUsecase) ValidateAccessToken(ctx context.Context, accessToken string) (string, string, error) {
	claims, err := u.codec.Verify(accessToken)
	if err != nil {
		return "", "", err
	}

	// Re-confirm the subject against the live user store so a token cannot
	// outlive its account.
	user, err := u.userRepo.FindByPublicID(ctx, claims.PublicID)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", domain.ErrSubjectNotFound
	}

	return user.PublicID, user.Email, nil
}
