package delivery

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	authdelivery "skinthesia-backend/internal/auth/delivery"
	"skinthesia-backend/internal/testimonial/domain"
	"skinthesia-backend/internal/testimonial/usecase"

	"github.com/gin-gonic/gin"
)

// maxAvatarBytes caps uploaded avatar images at 3MB.
const maxAvatarBytes = 3 * 1024 * 1024

type TestimonialHandler struct {
	testimonialUsecase usecase.TestimonialUsecase
}

func NewTestimonialHandler(testimonialUsecase usecase.TestimonialUsecase) *TestimonialHandler {
	return &TestimonialHandler{testimonialUsecase: testimonialUsecase}
}

type testimonialResponse struct {
	ID        uint    `json:"id"`
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	Content   string  `json:"content"`
	Avatar    *string `json:"avatar"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

func toResponse(t *domain.Testimonial) testimonialResponse {
	resp := testimonialResponse{
		ID:      t.ID,
		UserID:  t.UserPublicID,
		Name:    t.Name,
		Content: t.Content,
	}
	if len(t.AvatarData) > 0 {
		dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(t.AvatarData)
		resp.Avatar = &dataURL
	}
	if !t.CreatedAt.IsZero() {
		resp.CreatedAt = t.CreatedAt.Format(time.RFC3339)
	}
	if !t.UpdatedAt.IsZero() {
		resp.UpdatedAt = t.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.testimonialUsecase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load testimonials."})
		return
	}

	out := make([]testimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		out = append(out, toResponse(&testimonials[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	content := c.PostForm("content")
	if name == "" || len(name) > 100 || content == "" || len(content) > 255 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name (max 100) and content (max 255) are required"})
		return
	}

	avatar, ok := h.readAvatar(c)
	if !ok {
		return
	}

	t, err := h.testimonialUsecase.Create(c.Request.Context(), c.GetString(authdelivery.ContextPublicID), name, content, avatar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add testimonial."})
		return
	}

	resp := toResponse(t)
	c.JSON(http.StatusCreated, gin.H{
		"id": resp.ID, "userId": resp.UserID, "name": resp.Name,
		"content": resp.Content, "avatar": resp.Avatar,
		"created_at": resp.CreatedAt, "updated_at": resp.UpdatedAt,
		"message": "Testimonial added.",
	})
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid testimonial id"})
		return
	}

	name := c.PostForm("name")
	content := c.PostForm("content")
	if name == "" || len(name) > 100 || content == "" || len(content) > 255 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name (max 100) and content (max 255) are required"})
		return
	}

	avatar, ok := h.readAvatar(c)
	if !ok {
		return
	}
	// An avatar field present but empty means "remove the stored avatar";
	// an absent field keeps it.
	_, fieldPresent := c.GetPostForm("avatar")
	clearAvatar := fieldPresent && len(avatar) == 0

	t, err := h.testimonialUsecase.Update(c.Request.Context(), uint(id), c.GetString(authdelivery.ContextPublicID), name, content, avatar, clearAvatar)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTestimonialNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Testimonial not found."})
		case errors.Is(err, domain.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You do not have permission to edit this testimonial."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update testimonial."})
		}
		return
	}

	resp := toResponse(t)
	c.JSON(http.StatusOK, gin.H{
		"id": resp.ID, "userId": resp.UserID, "name": resp.Name,
		"content": resp.Content, "avatar": resp.Avatar,
		"message": "Testimonial updated.",
	})
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid testimonial id"})
		return
	}

	err = h.testimonialUsecase.Delete(c.Request.Context(), uint(id), c.GetString(authdelivery.ContextPublicID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTestimonialNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Testimonial not found."})
		case errors.Is(err, domain.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You do not have permission to delete this testimonial."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete testimonial."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted."})
}

// readAvatar pulls the optional avatar file out of the multipart form.
// Returns ok=false after writing an error response.
func (h *TestimonialHandler) readAvatar(c *gin.Context) ([]byte, bool) {
	file, err := c.FormFile("avatar")
	if err != nil {
		// No file uploaded; the avatar may still arrive as a plain field
		// (empty string clears it on update).
		return nil, true
	}
	if file.Size > maxAvatarBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Avatar file too large. Maximum is 3MB."})
		return nil, false
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "could not read avatar file"})
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxAvatarBytes+1))
	if err != nil || int64(len(data)) > maxAvatarBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Avatar file too large. Maximum is 3MB."})
		return nil, false
	}
	return data, true
}
