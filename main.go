package main

import (
	"log"

	api "skinthesia-backend/cmd/api"
	authdomain "skinthesia-backend/internal/auth/domain"
	authRepo "skinthesia-backend/internal/auth/repository"
	"skinthesia-backend/internal/auth/token"
	authUsecase "skinthesia-backend/internal/auth/usecase"
	testimonialdomain "skinthesia-backend/internal/testimonial/domain"
	testimonialRepo "skinthesia-backend/internal/testimonial/repository"
	testimonialUsecase "skinthesia-backend/internal/testimonial/usecase"
	"skinthesia-backend/pkg/config"
	"skinthesia-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.IsProduction() && cfg.JWTSecret == "your-secret-key-change-in-production" {
		log.Fatal("JWT_SECRET must be set in production")
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &testimonialdomain.Testimonial{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	refreshTokenRepo := authRepo.NewRefreshTokenRepository(db)
	testimonialRepository := testimonialRepo.NewTestimonialRepository(db)

	// Initialize use cases
	codec := token.NewCodec(cfg.JWTSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry())
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, refreshTokenRepo, codec, cfg.RefreshTokenExpiry())
	testimonialUsecaseInstance := testimonialUsecase.NewTestimonialUsecase(testimonialRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, testimonialUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
