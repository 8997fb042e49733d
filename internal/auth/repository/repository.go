package repository

import (
	"context"
	"time"

	"skinthesia-backend/internal/auth/domain"
)

// UserRepository is the credential store. Lookups return (nil, nil) when no
// row matches so callers can distinguish "absent" from a storage failure.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPublicID(ctx context.Context, publicID string) (*domain.User, error)
	// TouchUpdatedAt bumps updated_at after a successful login. Best-effort:
	// callers log a failure and carry on.
	TouchUpdatedAt(ctx context.Context, publicID string) error
}

// RefreshTokenRepository is the refresh ledger: at most one live token per
// user, enforced by Replace.
type RefreshTokenRepository interface {
	// Replace atomically removes any existing record for the user and
	// inserts the new one. A concurrent reader sees the old record or the
	// new one, never neither.
	Replace(ctx context.Context, publicID, token string, expiresAt time.Time) error
	// Find matches on both user and exact token string; (nil, nil) when the
	// pair is not the currently-recognized one.
	Find(ctx context.Context, publicID, token string) (*domain.RefreshToken, error)
	// Delete and DeleteByUser are idempotent revocation primitives.
	Delete(ctx context.Context, publicID, token string) error
	DeleteByUser(ctx context.Context, publicID string) error
}
