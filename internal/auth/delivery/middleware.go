package delivery

import (
	"errors"
	"net/http"
	"strings"

	"skinthesia-backend/internal/auth/domain"
	"skinthesia-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextPublicID = "publicId"
	ContextEmail    = "email"
)

// AuthMiddleware gates protected routes on a bearer access token. The token
// must verify and its subject must still exist in the user store; a deleted
// account invalidates outstanding tokens immediately.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header format"})
			c.Abort()
			return
		}

		publicID, email, err := authUsecase.ValidateAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, domain.ErrStorageUnavailable) {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "could not validate token"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			}
			c.Abort()
			return
		}

		c.Set(ContextPublicID, publicID)
		c.Set(ContextEmail, email)
		c.Next()
	}
}
