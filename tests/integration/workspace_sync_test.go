package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/crm"
	"github.com/vena/backend/internal/domain/finance"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/infrastructure/persistence"
)

// TestWorkspaceSyncIntegration loads a workspace from a real PostgreSQL
// database and drives writes through the gateway layer.
func TestWorkspaceSyncIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	ctx := context.Background()

	gateways := persistence.NewGateways(tdb.DB, zap.NewNop(), persistence.GatewayOptions{})
	profileRepo := persistence.NewGormProfileRepository(tdb.DB)
	stores := syncstore.NewManager(gateways.Bundle(), profileRepo, zap.NewNop())

	ownerID := tdb.CreateTestUser(identity.RoleAdmin)
	user := &identity.User{ID: ownerID, Role: identity.RoleAdmin, IsApproved: true}

	store, err := stores.Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, syncstore.StateReady, store.State())

	t.Run("missing profile falls back to defaults", func(t *testing.T) {
		profile := store.Profile()
		assert.Equal(t, identity.DefaultBrandColor, profile.BrandColor)
	})

	t.Run("create lands remotely and in the mirror", func(t *testing.T) {
		stored, err := store.Clients.Create(ctx, crm.Client{
			Name:   "Budi Santoso",
			Email:  "budi@example.com",
			Status: crm.ClientStatusActive,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, stored.ID)

		got, found := store.Clients.Get(stored.ID)
		require.True(t, found)
		assert.Equal(t, "Budi Santoso", got.Name)

		// The row must survive a full reload from the database.
		require.NoError(t, store.Clients.Refresh(ctx))
		_, found = store.Clients.Get(stored.ID)
		assert.True(t, found)
	})

	t.Run("update round trips through the database", func(t *testing.T) {
		stored, err := store.Clients.Create(ctx, crm.Client{Name: "Citra"})
		require.NoError(t, err)

		stored.Name = "Citra Ayu"
		updated, err := store.Clients.Update(ctx, stored.ID, stored)
		require.NoError(t, err)
		assert.Equal(t, "Citra Ayu", updated.Name)

		require.NoError(t, store.Clients.Refresh(ctx))
		got, found := store.Clients.Get(stored.ID)
		require.True(t, found)
		assert.Equal(t, "Citra Ayu", got.Name)
	})

	t.Run("delete removes the remote row", func(t *testing.T) {
		stored, err := store.Clients.Create(ctx, crm.Client{Name: "Dewi"})
		require.NoError(t, err)

		require.NoError(t, store.Clients.Delete(ctx, stored.ID))
		require.NoError(t, store.Clients.Refresh(ctx))
		_, found := store.Clients.Get(stored.ID)
		assert.False(t, found)
	})

	t.Run("decimal amounts survive the round trip", func(t *testing.T) {
		amount := decimal.RequireFromString("1250000.50")
		stored, err := store.Transactions.Create(ctx, finance.Transaction{
			Description: "DP pernikahan",
			Amount:      amount,
			Type:        finance.TransactionIncome,
		})
		require.NoError(t, err)

		require.NoError(t, store.Transactions.Refresh(ctx))
		got, found := store.Transactions.Get(stored.ID)
		require.True(t, found)
		assert.True(t, amount.Equal(got.Amount), "expected %s, got %s", amount, got.Amount)
	})

	t.Run("profile update persists", func(t *testing.T) {
		profile := store.Profile()
		profile.CompanyName = "Vena Pictures"
		profile.BrandColor = "#112233"
		require.NoError(t, store.UpdateProfile(ctx, profile))

		fresh, err := profileRepo.FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, "#112233", fresh.BrandColor)
	})
}

// TestWorkspaceOwnerIsolation verifies that two owners sharing one database
// never see each other's rows.
func TestWorkspaceOwnerIsolation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	ctx := context.Background()

	gateways := persistence.NewGateways(tdb.DB, zap.NewNop(), persistence.GatewayOptions{})
	stores := syncstore.NewManager(gateways.Bundle(), persistence.NewGormProfileRepository(tdb.DB), zap.NewNop())

	ownerA := &identity.User{ID: tdb.CreateTestUser(identity.RoleAdmin), Role: identity.RoleAdmin, IsApproved: true}
	ownerB := &identity.User{ID: tdb.CreateTestUser(identity.RoleAdmin), Role: identity.RoleAdmin, IsApproved: true}

	storeA, err := stores.Get(ctx, ownerA)
	require.NoError(t, err)
	storeB, err := stores.Get(ctx, ownerB)
	require.NoError(t, err)

	created, err := storeA.Clients.Create(ctx, crm.Client{Name: "Budi"})
	require.NoError(t, err)

	// B's mirror and B's remote view must both stay empty.
	require.NoError(t, storeB.Clients.Refresh(ctx))
	assert.Empty(t, storeB.Clients.Items())

	// B cannot update A's record, and B's delete must not touch A's row.
	_, err = storeB.Clients.Update(ctx, created.ID, crm.Client{Name: "Hijacked"})
	assert.Error(t, err)
	require.NoError(t, storeB.Clients.Delete(ctx, created.ID))

	// A still has the record untouched.
	require.NoError(t, storeA.Clients.Refresh(ctx))
	got, found := storeA.Clients.Get(created.ID)
	require.True(t, found)
	assert.Equal(t, "Budi", got.Name)
}
