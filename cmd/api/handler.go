package api

import (
	authUsecase "skinthesia-backend/internal/auth/usecase"
	recommendDelivery "skinthesia-backend/internal/recommend/delivery"
	testimonialUsecase "skinthesia-backend/internal/testimonial/usecase"
	"skinthesia-backend/pkg/config"
	"skinthesia-backend/pkg/recommend"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase        authUsecase.AuthUsecase
	testimonialUsecase testimonialUsecase.TestimonialUsecase
	recommendHandler   *recommendDelivery.RecommendHandler
	config             *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, testimonialUc testimonialUsecase.TestimonialUsecase, cfg *config.Config) *Handler {
	recommendClient := recommend.NewClient(cfg.RecommendAPIURL)

	return &Handler{
		authUsecase:        authUc,
		testimonialUsecase: testimonialUc,
		recommendHandler:   recommendDelivery.NewRecommendHandler(recommendClient),
		config:             cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware; origin is echoed back so cookies survive
	// credentialed cross-origin requests.
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.testimonialUsecase, h.recommendHandler, h.config)

	return r.Run(addr)
}
