package usecase

import (
	"context"

	"skinthesia-backend/internal/testimonial/domain"
	"skinthesia-backend/internal/testimonial/repository"
)

type TestimonialUsecase interface {
	List(ctx context.Context) ([]domain.Testimonial, error)
	Create(ctx context.Context, userPublicID, name, content string, avatar []byte) (*domain.Testimonial, error)
	// Update replaces name and content. Avatar handling follows the upload
	// form: a new blob replaces the old one, an explicit clear removes it,
	// and no change keeps whatever was stored.
	Update(ctx context.Context, id uint, userPublicID, name, content string, avatar []byte, clearAvatar bool) (*domain.Testimonial, error)
	Delete(ctx context.Context, id uint, userPublicID string) error
}

// testimonialUsecase implements TestimonialUsecase
type testimonialUsecase struct {
	repo repository.TestimonialRepository
}

func NewTestimonialUsecase(repo repository.TestimonialRepository) TestimonialUsecase {
	return &testimonialUsecase{repo: repo}
}

func (u *testimonialUsecase) List(ctx context.Context) ([]domain.Testimonial, error) {
	return u.repo.ListNewestFirst(ctx)
}

func (u *testimonialUsecase) Create(ctx context.Context, userPublicID, name, content string, avatar []byte) (*domain.Testimonial, error) {
	t := &domain.Testimonial{
		UserPublicID: userPublicID,
		Name:         name,
		Content:      content,
		AvatarData:   avatar,
	}
	if err := u.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *testimonialUsecase) Update(ctx context.Context, id uint, userPublicID, name, content string, avatar []byte, clearAvatar bool) (*domain.Testimonial, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrTestimonialNotFound
	}
	if existing.UserPublicID != userPublicID {
		return nil, domain.ErrNotOwner
	}

	existing.Name = name
	existing.Content = content
	switch {
	case len(avatar) > 0:
		existing.AvatarData = avatar
	case clearAvatar:
		existing.AvatarData = nil
	}

	if err := u.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *testimonialUsecase) Delete(ctx context.Context, id uint, userPublicID string) error {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrTestimonialNotFound
	}
	if existing.UserPublicID != userPublicID {
		return domain.ErrNotOwner
	}
	return u.repo.Delete(ctx, id)
}
