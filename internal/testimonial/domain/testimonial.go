package domain

import (
	"errors"
	"time"
)

type Testimonial struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserPublicID string    `json:"userId" gorm:"index"`
	Name         string    `json:"name" gorm:"size:100"`
	Content      string    `json:"content" gorm:"size:255"`
	AvatarData   []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var (
	ErrTestimonialNotFound = errors.New("testimonial not found")
	// ErrNotOwner is returned when a user edits or deletes a testimonial
	// they did not create.
	ErrNotOwner = errors.New("not the owner of this testimonial")
)
