package auth_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vena/backend/internal/infrastructure/auth"
)

func TestInMemoryTokenBlacklist_RevokeByJTI(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "logout-jti", time.Hour))

	revoked, err := blacklist.IsBlacklisted(ctx, "logout-jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Other sessions stay valid
	revoked, err = blacklist.IsBlacklisted(ctx, "other-jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_EntryExpiresWithToken(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "short-lived", time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	revoked, err := blacklist.IsBlacklisted(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, revoked, "a revocation entry outliving the token serves no purpose")
}

func TestInMemoryTokenBlacklist_UserCutoff(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	issuedBefore := time.Now().Add(-time.Hour)

	invalidated, err := blacklist.IsUserTokenInvalidated(ctx, "owner-1", issuedBefore)
	require.NoError(t, err)
	assert.False(t, invalidated)

	require.NoError(t, blacklist.AddUserTokensToBlacklist(ctx, "owner-1", time.Hour))

	// Tokens from before the cutoff are out
	invalidated, err = blacklist.IsUserTokenInvalidated(ctx, "owner-1", issuedBefore)
	require.NoError(t, err)
	assert.True(t, invalidated)

	// A token minted after the cutoff stays valid
	invalidated, err = blacklist.IsUserTokenInvalidated(ctx, "owner-1", time.Now().Add(time.Second))
	require.NoError(t, err)
	assert.False(t, invalidated)

	// The cutoff is per user
	invalidated, err = blacklist.IsUserTokenInvalidated(ctx, "owner-2", issuedBefore)
	require.NoError(t, err)
	assert.False(t, invalidated)
}

func TestInMemoryTokenBlacklist_ManySessions(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, blacklist.AddToBlacklist(ctx, fmt.Sprintf("session-%d", i), time.Hour))
	}
	for i := 0; i < 10; i++ {
		revoked, err := blacklist.IsBlacklisted(ctx, fmt.Sprintf("session-%d", i))
		require.NoError(t, err)
		assert.True(t, revoked, "session-%d should be revoked", i)
	}

	revoked, err := blacklist.IsBlacklisted(ctx, "still-active")
	require.NoError(t, err)
	assert.False(t, revoked)
}
