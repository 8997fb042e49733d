package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skinthesia-backend/internal/auth/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the original deployment's 10 salt rounds.
const bcryptCost = 10

// userRepository implements UserRepository over GORM
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	user.PublicID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// The unique index on email races with any pre-check; a constraint
		// violation here is the same outcome as a failed pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateIdentity
		}
		return storageErr(err)
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err)
	}
	return &user, nil
}

func (r *userRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err)
	}
	return &user, nil
}

func (r *userRepository) TouchUpdatedAt(ctx context.Context, publicID string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("public_id = ?", publicID).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return storageErr(err)
	}
	return nil
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// SaltFromHash returns the cost-and-salt prefix of a bcrypt hash. bcrypt
// embeds its salt in the hash; the users table keeps a mirror column for
// schema compatibility with the original database.
func SaltFromHash(hash string) string {
	if len(hash) < 29 {
		return hash
	}
	return hash[:29]
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
