// Package token mints and verifies the signed access/refresh token pair.
// The codec is stateless; both lifetimes and the signing secret are injected
// at construction so tests can run with near-zero expirations.
package token

import (
	"errors"
	"time"

	"skinthesia-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by both access and refresh tokens.
type Claims struct {
	PublicID string `json:"publicId"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type Pair struct {
	AccessToken  string
	RefreshToken string
}

type Codec struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewCodec(secret string, accessExpiry, refreshExpiry time.Duration) *Codec {
	return &Codec{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// IssuePair signs a short-lived access token and a long-lived refresh token
// for the same subject. Both use HS256 with the process-wide secret; the
// expirations are independent.
func (c *Codec) IssuePair(publicID, email string) (*Pair, error) {
	accessToken, err := c.sign(publicID, email, c.accessExpiry, "")
	if err != nil {
		return nil, err
	}
	// The unique token ID makes every rotation produce a distinct refresh
	// token string, even for back-to-back logins within the same second.
	refreshToken, err := c.sign(publicID, email, c.refreshExpiry, uuid.New().String())
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// IssueAccess signs a new access token only, used by the refresh exchange.
func (c *Codec) IssueAccess(publicID, email string) (string, error) {
	return c.sign(publicID, email, c.accessExpiry, "")
}

func (c *Codec) sign(publicID, email string, validity time.Duration, tokenID string) (string, error) {
	now := time.Now()
	claims := Claims{
		PublicID: publicID,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Expiry and any other defect are reported as distinct errors because the
// refresh flow cleans up the ledger only when the token trustworthily names
// a subject.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// DecodeUnsafe extracts claims without checking signature or expiry. It
// exists solely so an already-rejected refresh token can name the ledger
// row to delete; it must never feed an authorization decision.
func (c *Codec) DecodeUnsafe(tokenString string) *Claims {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil
	}
	return claims
}
