package repository

import (
	"context"
	"errors"

	"skinthesia-backend/internal/testimonial/domain"

	"gorm.io/gorm"
)

type TestimonialRepository interface {
	ListNewestFirst(ctx context.Context) ([]domain.Testimonial, error)
	FindByID(ctx context.Context, id uint) (*domain.Testimonial, error)
	Create(ctx context.Context, t *domain.Testimonial) error
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id uint) error
}

// testimonialRepository implements TestimonialRepository over GORM
type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) ListNewestFirst(ctx context.Context) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uint) (*domain.Testimonial, error) {
	var t domain.Testimonial
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *testimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	// Save writes all fields, including a nil AvatarData when the avatar
	// was cleared.
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *testimonialRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Testimonial{}, id).Error
}
