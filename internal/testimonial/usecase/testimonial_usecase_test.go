package usecase

import (
	"context"
	"testing"

	"skinthesia-backend/internal/testimonial/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTestimonialRepo struct {
	nextID       uint
	testimonials map[uint]*domain.Testimonial
}

func newFakeRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{nextID: 1, testimonials: map[uint]*domain.Testimonial{}}
}

func (r *fakeTestimonialRepo) ListNewestFirst(_ context.Context) ([]domain.Testimonial, error) {
	out := make([]domain.Testimonial, 0, len(r.testimonials))
	for _, t := range r.testimonials {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTestimonialRepo) FindByID(_ context.Context, id uint) (*domain.Testimonial, error) {
	t, ok := r.testimonials[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTestimonialRepo) Create(_ context.Context, t *domain.Testimonial) error {
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.testimonials[t.ID] = &cp
	return nil
}

func (r *fakeTestimonialRepo) Update(_ context.Context, t *domain.Testimonial) error {
	cp := *t
	r.testimonials[t.ID] = &cp
	return nil
}

func (r *fakeTestimonialRepo) Delete(_ context.Context, id uint) error {
	delete(r.testimonials, id)
	return nil
}

func TestCreateAndList(t *testing.T) {
	repo := newFakeRepo()
	uc := NewTestimonialUsecase(repo)

	created, err := uc.Create(context.Background(), "user-1", "Ana", "Great serum!", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "user-1", list[0].UserPublicID)
}

func TestUpdateOwnerOnly(t *testing.T) {
	repo := newFakeRepo()
	uc := NewTestimonialUsecase(repo)

	created, err := uc.Create(context.Background(), "user-1", "Ana", "Great serum!", nil)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, "user-2", "Eve", "hacked", nil, false)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	updated, err := uc.Update(context.Background(), created.ID, "user-1", "Ana", "Still great", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "Still great", updated.Content)
}

func TestUpdateAvatarSemantics(t *testing.T) {
	repo := newFakeRepo()
	uc := NewTestimonialUsecase(repo)

	created, err := uc.Create(context.Background(), "user-1", "Ana", "Great serum!", []byte{1, 2, 3})
	require.NoError(t, err)

	// No new avatar and no clear keeps the old one.
	kept, err := uc.Update(context.Background(), created.ID, "user-1", "Ana", "edit", nil, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, kept.AvatarData)

	// A new blob replaces it.
	replaced, err := uc.Update(context.Background(), created.ID, "user-1", "Ana", "edit", []byte{9}, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, replaced.AvatarData)

	// An explicit clear removes it.
	cleared, err := uc.Update(context.Background(), created.ID, "user-1", "Ana", "edit", nil, true)
	require.NoError(t, err)
	assert.Nil(t, cleared.AvatarData)
}

func TestUpdateMissing(t *testing.T) {
	uc := NewTestimonialUsecase(newFakeRepo())

	_, err := uc.Update(context.Background(), 42, "user-1", "Ana", "edit", nil, false)
	assert.ErrorIs(t, err, domain.ErrTestimonialNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	uc := NewTestimonialUsecase(repo)

	created, err := uc.Create(context.Background(), "user-1", "Ana", "Great serum!", nil)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID, "user-2"), domain.ErrNotOwner)
	require.NoError(t, uc.Delete(context.Background(), created.ID, "user-1"))
	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID, "user-1"), domain.ErrTestimonialNotFound)
}
