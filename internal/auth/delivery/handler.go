package delivery

import (
	"errors"
	"net/http"
	"time"

	"skinthesia-backend/internal/auth/domain"
	"skinthesia-backend/internal/auth/dto"
	"skinthesia-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refreshToken"

type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, refreshExpiry time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		cookieMaxAge: int(refreshExpiry.Seconds()),
		cookieSecure: secureCookies,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	session, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email is already registered."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed."})
		return
	}

	h.setRefreshCookie(c, session.RefreshToken)
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		ID:                  session.PublicID,
		Email:               session.Email,
		CreatedAt:           session.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           session.UpdatedAt.Format(time.RFC3339),
		AccessToken:         session.AccessToken,
		RefreshTokenExpired: session.RefreshTokenExpiresAt.Format(time.RFC3339),
		Message:             "Registration successful.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	session, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed."})
		return
	}

	h.setRefreshCookie(c, session.RefreshToken)
	c.JSON(http.StatusOK, dto.LoginResponse{
		ID:                  session.PublicID,
		Email:               session.Email,
		AccessToken:         session.AccessToken,
		RefreshToken:        session.RefreshToken,
		RefreshTokenExpired: session.RefreshTokenExpiresAt.Format(time.RFC3339),
		Message:             "Login successful.",
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Refresh token not found in cookie."})
		return
	}

	accessToken, err := h.authUsecase.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingRefreshToken):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Refresh token not found in cookie."})
		case errors.Is(err, domain.ErrRefreshTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Refresh token has expired. Please log in again."})
		case errors.Is(err, domain.ErrRefreshTokenInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Refresh token is invalid or revoked. Please log in again."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to refresh token. Please log in again."})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken: accessToken,
		Message:     "Access token refreshed.",
	})
}

// setRefreshCookie delivers the refresh token out of reach of client-side
// script. The access token is bearer-header-only and never set in a cookie.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetCookie(refreshCookieName, refreshToken, h.cookieMaxAge, "/", "", h.cookieSecure, true)
}
