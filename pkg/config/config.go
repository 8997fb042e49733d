package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	JWTSecret         string
	AccessTokenExpiry time.Duration
	RefreshTokenDays  int
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	RecommendAPIURL   string
	StaticDir         string
	FrontendDistDir   string
}

// RefreshTokenExpiry is the refresh token lifetime derived from the
// configured day count. The cookie Max-Age and the ledger expires_at are
// both computed from this one value so the two clocks start out in sync.
func (c *Config) RefreshTokenExpiry() time.Duration {
	return time.Duration(c.RefreshTokenDays) * 24 * time.Hour
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("ACCESS_TOKEN_EXPIRATION"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshDays := 7
	if d := os.Getenv("REFRESH_TOKEN_EXPIRATION_DB_DAYS"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 {
			refreshDays = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AccessTokenExpiry: accessExpiry,
		RefreshTokenDays:  refreshDays,
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "skinthesia"),
		RecommendAPIURL:   getEnv("RECOMMEND_API_URL", "https://skinthesia-api-production.up.railway.app/recommend"),
		StaticDir:         getEnv("STATIC_DIR", "public"),
		FrontendDistDir:   getEnv("FRONTEND_DIST_DIR", "dist"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
