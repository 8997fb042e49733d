package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"skinthesia-backend/internal/auth/delivery"
	authUsecase "skinthesia-backend/internal/auth/usecase"
	recommendDelivery "skinthesia-backend/internal/recommend/delivery"
	testimonialDelivery "skinthesia-backend/internal/testimonial/delivery"
	testimonialUsecase "skinthesia-backend/internal/testimonial/usecase"
	"skinthesia-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, testimonialUc testimonialUsecase.TestimonialUsecase, recommendHandler *recommendDelivery.RecommendHandler, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc, cfg.RefreshTokenExpiry(), cfg.IsProduction())
	testimonialHandler := testimonialDelivery.NewTestimonialHandler(testimonialUc)

	// Auth routes; refresh is gated by the cookie, not a bearer token.
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh-token", authHandler.Refresh)

	api := r.Group("/api")
	{
		// Reading testimonials is public; writing requires a valid session.
		api.GET("/testimonials", testimonialHandler.List)
		api.POST("/testimonials", delivery.AuthMiddleware(authUc), testimonialHandler.Create)
		api.PUT("/testimonials/:id", delivery.AuthMiddleware(authUc), testimonialHandler.Update)
		api.DELETE("/testimonials/:id", delivery.AuthMiddleware(authUc), testimonialHandler.Delete)

		api.POST("/recommend", recommendHandler.Recommend)
	}

	// Static assets and the built frontend. Anything that isn't an API
	// route falls through to the SPA's index.html.
	r.Static("/files", cfg.StaticDir)
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		path := filepath.Join(cfg.FrontendDistDir, filepath.Clean("/"+c.Request.URL.Path))
		if fileExists(path) {
			c.File(path)
			return
		}
		c.File(filepath.Join(cfg.FrontendDistDir, "index.html"))
	})
}
