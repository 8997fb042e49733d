package token

import (
	"testing"
	"time"

	"skinthesia-backend/internal/auth/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuePairAndVerify(t *testing.T) {
	codec := NewCodec("test-secret", 15*time.Minute, 7*24*time.Hour)

	pair, err := codec.IssuePair("user-1", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	for _, tok := range []string{pair.AccessToken, pair.RefreshToken} {
		claims, err := codec.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.PublicID)
		assert.Equal(t, "user@example.com", claims.Email)
	}
}

func TestIssuePairRefreshTokensDiffer(t *testing.T) {
	codec := NewCodec("test-secret", 15*time.Minute, 7*24*time.Hour)

	first, err := codec.IssuePair("user-1", "user@example.com")
	require.NoError(t, err)
	second, err := codec.IssuePair("user-1", "user@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestVerifyExpired(t *testing.T) {
	codec := NewCodec("test-secret", -time.Minute, -time.Minute)

	pair, err := codec.IssuePair("user-1", "user@example.com")
	require.NoError(t, err)

	_, err = codec.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestVerifyTamperedSignature(t *testing.T) {
	codec := NewCodec("test-secret", 15*time.Minute, 7*24*time.Hour)

	pair, err := codec.IssuePair("user-1", "user@example.com")
	require.NoError(t, err)

	_, err = codec.Verify(pair.AccessToken + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	codec := NewCodec("test-secret", 15*time.Minute, 7*24*time.Hour)
	other := NewCodec("another-secret", 15*time.Minute, 7*24*time.Hour)

	pair, err := other.IssuePair("user-1", "user@example.com")
	require.NoError(t, err)

	_, err = codec.Verify(pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	codec := NewCodec("test-secret", 15*time.Minute, 7*24*time.Hour)

	_, err := codec.Verify("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestDecodeUnsafeExpiredToken(t *testing.T) {
	codec := NewCodec("test-secret", -time.Minute, -time.Minute)

	pair, err := codec.IssuePair("user-1", "user@example.com")
	require.NoError(t, err)

	// Verify rejects the token, but the claims remain recoverable for
	// ledger cleanup.
	_, err = codec.Verify(pair.RefreshToken)
	require.ErrorIs(t, err, domain.ErrTokenExpired)

	claims := codec.DecodeUnsafe(pair.RefreshToken)
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.PublicID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestDecodeUnsafeGarbage(t *testing.T) {
	codec := NewCodec("test-secret", 15*time.Minute, 7*24*time.Hour)
	assert.Nil(t, codec.DecodeUnsafe("garbage"))
}
