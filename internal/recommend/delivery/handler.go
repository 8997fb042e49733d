package delivery

import (
	"net/http"

	"skinthesia-backend/pkg/recommend"

	"github.com/gin-gonic/gin"
)

// RecommendRequest mirrors the external API's expected skin profile.
type RecommendRequest struct {
	SkinType    string  `json:"skin_type" binding:"required,oneof=oily dry normal combination"`
	SkinConcern string  `json:"skin_concern" binding:"required"`
	SkinGoal    string  `json:"skin_goal" binding:"required"`
	Ingredient  string  `json:"ingredient"`
	Age         string  `json:"age" binding:"required"`
	PriceMin    float64 `json:"price_min" binding:"min=0"`
	PriceMax    float64 `json:"price_max" binding:"required,gtefield=PriceMin"`
	Category    string  `json:"category" binding:"required"`
}

type RecommendHandler struct {
	client *recommend.Client
}

func NewRecommendHandler(client *recommend.Client) *RecommendHandler {
	return &RecommendHandler{client: client}
}

func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	status, body, err := h.client.Recommend(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get recommendations."})
		return
	}

	// Pass the upstream response through as-is, success or failure.
	c.Data(status, "application/json", body)
}
