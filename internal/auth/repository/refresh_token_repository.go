package repository

import (
	"context"
	"errors"
	"time"

	"skinthesia-backend/internal/auth/domain"

	"gorm.io/gorm"
)

// refreshTokenRepository implements RefreshTokenRepository over GORM
type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Replace(ctx context.Context, publicID, token string, expiresAt time.Time) error {
	// Delete-then-insert in one transaction so the single-record-per-user
	// invariant holds even against a concurrent refresh for the same user.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_public_id = ?", publicID).Delete(&domain.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&domain.RefreshToken{
			UserPublicID: publicID,
			Token:        token,
			ExpiresAt:    expiresAt,
		}).Error
	})
	if err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *refreshTokenRepository) Find(ctx context.Context, publicID, token string) (*domain.RefreshToken, error) {
	var record domain.RefreshToken
	err := r.db.WithContext(ctx).
		Where("user_public_id = ? AND token = ?", publicID, token).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err)
	}
	return &record, nil
}

func (r *refreshTokenRepository) Delete(ctx context.Context, publicID, token string) error {
	err := r.db.WithContext(ctx).
		Where("user_public_id = ? AND token = ?", publicID, token).
		Delete(&domain.RefreshToken{}).Error
	if err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *refreshTokenRepository) DeleteByUser(ctx context.Context, publicID string) error {
	err := r.db.WithContext(ctx).
		Where("user_public_id = ?", publicID).
		Delete(&domain.RefreshToken{}).Error
	if err != nil {
		return storageErr(err)
	}
	return nil
}
