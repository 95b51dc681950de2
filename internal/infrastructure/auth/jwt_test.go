package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vena/backend/internal/infrastructure/config"
)

func jwtTestConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "vena-access-secret-at-least-32ch",
		RefreshSecret:          "vena-refresh-secret-at-least-32c",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "vena-backend",
	}
}

// sharedSecretService signs both token types with one secret, so only the
// token_type claim tells them apart.
func sharedSecretService() *JWTService {
	cfg := jwtTestConfig()
	cfg.RefreshSecret = cfg.Secret
	return NewJWTService(cfg)
}

func vendorInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID:      uuid.New(),
		Email:       "andi@venapictures.com",
		Role:        "Admin",
		Permissions: []string{"prospek", "booking", "clients"},
		IsApproved:  true,
	}
}

func TestNewJWTService(t *testing.T) {
	cfg := jwtTestConfig()
	svc := NewJWTService(cfg)

	assert.Equal(t, []byte(cfg.Secret), svc.accessSecret)
	assert.Equal(t, []byte(cfg.RefreshSecret), svc.refreshSecret)
	assert.Equal(t, cfg.AccessTokenExpiration, svc.accessExpiration)
	assert.Equal(t, cfg.RefreshTokenExpiration, svc.refreshExpiration)
	assert.Equal(t, cfg.Issuer, svc.issuer)

	t.Run("refresh secret falls back to access secret", func(t *testing.T) {
		cfg := jwtTestConfig()
		cfg.RefreshSecret = ""
		assert.Equal(t, []byte(cfg.Secret), NewJWTService(cfg).refreshSecret)
	})
}

func TestGenerateTokenPair(t *testing.T) {
	svc := NewJWTService(jwtTestConfig())
	input := vendorInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.AccessTokenExpiresAt.After(time.Now()))
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, "andi@venapictures.com", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, input.Permissions, claims.Permissions)
	assert.True(t, claims.IsApproved)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, input.UserID.String(), refreshClaims.UserID)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
	// The refresh token carries identity only, no role or permissions.
	assert.Empty(t, refreshClaims.Permissions)
	assert.Empty(t, refreshClaims.Role)
}

func TestValidateAccessToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		svc := NewJWTService(jwtTestConfig())
		_, err := svc.ValidateAccessToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		cfg := jwtTestConfig()
		cfg.AccessTokenExpiration = -time.Hour
		svc := NewJWTService(cfg)

		pair, err := svc.GenerateTokenPair(vendorInput())
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("refresh token rejected even with shared secret", func(t *testing.T) {
		svc := sharedSecretService()
		pair, err := svc.GenerateTokenPair(vendorInput())
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		pair, err := NewJWTService(jwtTestConfig()).GenerateTokenPair(vendorInput())
		require.NoError(t, err)

		other := jwtTestConfig()
		other.Secret = "a-completely-different-secret-32"
		_, err = NewJWTService(other).ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := sharedSecretService()
	pair, err := svc.GenerateTokenPair(vendorInput())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestRefreshTokenPair(t *testing.T) {
	svc := NewJWTService(jwtTestConfig())
	input := vendorInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	t.Run("picks up permission changes", func(t *testing.T) {
		updated := input
		updated.Permissions = []string{"dashboard", "keuangan"}

		newPair, err := svc.RefreshTokenPair(pair.RefreshToken, updated)
		require.NoError(t, err)
		assert.NotEqual(t, pair.AccessToken, newPair.AccessToken)

		claims, err := svc.ValidateAccessToken(newPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, []string{"dashboard", "keuangan"}, claims.Permissions)
	})

	t.Run("rejects mismatched user", func(t *testing.T) {
		other := input
		other.UserID = uuid.New()
		_, err := svc.RefreshTokenPair(pair.RefreshToken, other)
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		_, err := svc.RefreshTokenPair("not-a-jwt", input)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects access token", func(t *testing.T) {
		shared := sharedSecretService()
		pair, err := shared.GenerateTokenPair(input)
		require.NoError(t, err)

		_, err = shared.RefreshTokenPair(pair.AccessToken, input)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})
}

func TestClaimsHelpers(t *testing.T) {
	svc := NewJWTService(jwtTestConfig())
	input := vendorInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)
	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	userUUID, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, input.UserID, userUUID)

	assert.True(t, claims.HasPermission("prospek"))
	assert.False(t, claims.HasPermission("keuangan"))

	assert.False(t, claims.GetIssuedAtTime().IsZero())
	assert.False(t, claims.GetExpiresAtTime().IsZero())

	ttl := claims.GetRemainingTTL()
	assert.Greater(t, ttl, 14*time.Minute)
	assert.LessOrEqual(t, ttl, 15*time.Minute)

	t.Run("expired claims report zero TTL", func(t *testing.T) {
		expired := &Claims{}
		assert.Equal(t, time.Duration(0), expired.GetRemainingTTL())
		assert.True(t, expired.GetIssuedAtTime().IsZero())
	})
}

func TestExpirationAccessors(t *testing.T) {
	svc := NewJWTService(jwtTestConfig())
	assert.Equal(t, 15*time.Minute, svc.GetAccessTokenExpiration())
	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenExpiration())
}
