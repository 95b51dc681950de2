package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vena/backend/internal/domain/crm"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
)

func TestNewMockDB(t *testing.T) {
	mockDB := NewMockDB(t)
	defer mockDB.Close()

	assert.NotNil(t, mockDB.DB)
	assert.NotNil(t, mockDB.Mock)

	// Nothing queued, nothing unmet.
	mockDB.ExpectationsWereMet(t)
}

func TestMemoryGatewayCRUD(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()
	gw := NewMemoryGateways().Clients

	assert.Equal(t, "clients", gw.Name())

	first, err := gw.Insert(ctx, owner, uuid.Nil, crm.Client{
		Name:   "Andi Pratama",
		Status: crm.ClientStatusActive,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID, "insert assigns an id when none is given")

	keep := uuid.New()
	second, err := gw.Insert(ctx, owner, keep, crm.Client{
		Name:   "Studio Lumi",
		Status: crm.ClientStatusProspect,
	})
	require.NoError(t, err)
	assert.Equal(t, keep, second.ID)

	_, err = gw.Insert(ctx, other, uuid.Nil, crm.Client{Name: "Other Vendor"})
	require.NoError(t, err)

	listed, err := gw.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 2, "list is scoped to the owner")
	assert.Equal(t, "Andi Pratama", listed[0].Name, "insertion order is preserved")
	assert.Equal(t, "Studio Lumi", listed[1].Name)

	second.Status = crm.ClientStatusActive
	updated, err := gw.Update(ctx, owner, keep, second)
	require.NoError(t, err)
	assert.Equal(t, crm.ClientStatusActive, updated.Status)

	_, err = gw.Update(ctx, other, keep, second)
	assert.ErrorIs(t, err, shared.ErrNotFound, "another owner's id is invisible")

	require.NoError(t, gw.Delete(ctx, owner, first.ID))
	assert.ErrorIs(t, gw.Delete(ctx, owner, first.ID), shared.ErrNotFound)

	listed, err = gw.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, keep, listed[0].ID)
}

func TestMemoryGatewayFail(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	gw := NewMemoryGateways().Projects

	boom := errors.New("gateway unavailable")
	gw.Fail(boom)

	_, err := gw.List(ctx, owner)
	assert.ErrorIs(t, err, boom)

	gw.Fail(nil)
	_, err = gw.List(ctx, owner)
	assert.NoError(t, err)
}

func TestMemoryGatewaysBundle(t *testing.T) {
	gws := NewMemoryGateways()
	bundle := gws.Bundle()

	assert.Equal(t, "clients", bundle.Clients.Name())
	assert.Equal(t, "transactions", bundle.Transactions.Name())
	assert.Equal(t, "team_project_payments", bundle.ProjectPayments.Name())
	assert.Equal(t, "notifications", bundle.Notifications.Name())
}

func TestMemoryProfileRepo(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	repo := NewMemoryProfileRepo()

	_, err := repo.FindByOwner(ctx, owner)
	assert.ErrorIs(t, err, shared.ErrProfileMissing)

	profile := &identity.Profile{
		ID:          uuid.New(),
		AdminUserID: owner,
		FullName:    "Andi Pratama",
		CompanyName: "Vena Pictures",
	}
	require.NoError(t, repo.Create(ctx, profile))

	found, err := repo.FindByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Vena Pictures", found.CompanyName)

	found.CompanyName = "Vena Pictures Studio"
	require.NoError(t, repo.Update(ctx, found))

	again, err := repo.FindByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Vena Pictures Studio", again.CompanyName)

	stray := &identity.Profile{ID: uuid.New(), AdminUserID: uuid.New()}
	assert.ErrorIs(t, repo.Update(ctx, stray), shared.ErrNotFound)
}
