package domain

import "time"

type User struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	PublicID     string    `json:"id" gorm:"uniqueIndex;size:36"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"` // Never return password hash in JSON
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is the single currently-valid refresh token for a user.
// Login and registration replace the row rather than appending, so a user
// never holds more than one live session.
type RefreshToken struct {
	UserPublicID string    `json:"user_id" gorm:"index"`
	Token        string    `json:"token" gorm:"primaryKey"`
	ExpiresAt    time.Time `json:"expires_at"`
}
