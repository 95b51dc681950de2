package portal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vena/backend/internal/domain/crm"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/production"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/domain/team"
)

// MockPortalRepository is a mock implementation of Repository
type MockPortalRepository struct {
	mock.Mock
}

func (m *MockPortalRepository) ClientByAccessID(ctx context.Context, accessID string) (uuid.UUID, *crm.Client, error) {
	args := m.Called(ctx, accessID)
	if args.Get(1) == nil {
		return uuid.Nil, nil, args.Error(2)
	}
	return args.Get(0).(uuid.UUID), args.Get(1).(*crm.Client), args.Error(2)
}

func (m *MockPortalRepository) MemberByAccessID(ctx context.Context, accessID string) (uuid.UUID, *team.Member, error) {
	args := m.Called(ctx, accessID)
	if args.Get(1) == nil {
		return uuid.Nil, nil, args.Error(2)
	}
	return args.Get(0).(uuid.UUID), args.Get(1).(*team.Member), args.Error(2)
}

func (m *MockPortalRepository) ProjectsByClient(ctx context.Context, ownerID, clientID uuid.UUID) ([]production.Project, error) {
	args := m.Called(ctx, ownerID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.Project), args.Error(1)
}

func (m *MockPortalRepository) ContractsByClient(ctx context.Context, ownerID, clientID uuid.UUID) ([]crm.Contract, error) {
	args := m.Called(ctx, ownerID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Contract), args.Error(1)
}

func (m *MockPortalRepository) PaymentsByMember(ctx context.Context, ownerID, memberID uuid.UUID) ([]team.ProjectPayment, error) {
	args := m.Called(ctx, ownerID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]team.ProjectPayment), args.Error(1)
}

func (m *MockPortalRepository) RewardsByMember(ctx context.Context, ownerID, memberID uuid.UUID) ([]team.RewardLedgerEntry, error) {
	args := m.Called(ctx, ownerID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]team.RewardLedgerEntry), args.Error(1)
}

// MockProfileRepository is a mock implementation of identity.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*identity.Profile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *identity.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *identity.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func newTestService(repo *MockPortalRepository, profileRepo *MockProfileRepository) *Service {
	return NewService(repo, profileRepo, zap.NewNop())
}

func TestClientPortal(t *testing.T) {
	ownerID := uuid.New()
	client := &crm.Client{
		ID:             uuid.New(),
		Name:           "Budi Santoso",
		PortalAccessID: "tok-client-1",
	}
	projects := []production.Project{{ID: uuid.New(), ProjectName: "Pernikahan Budi & Sinta"}}
	contracts := []crm.Contract{{ID: uuid.New(), ContractNumber: "VP/CTR/2025/001"}}

	repo := new(MockPortalRepository)
	repo.On("ClientByAccessID", mock.Anything, "tok-client-1").Return(ownerID, client, nil)
	repo.On("ProjectsByClient", mock.Anything, ownerID, client.ID).Return(projects, nil)
	repo.On("ContractsByClient", mock.Anything, ownerID, client.ID).Return(contracts, nil)

	profileRepo := new(MockProfileRepository)
	profileRepo.On("FindByOwner", mock.Anything, ownerID).Return(&identity.Profile{
		CompanyName: "Vena Pictures",
		BrandColor:  "#112233",
	}, nil)

	service := newTestService(repo, profileRepo)

	view, err := service.ClientPortal(context.Background(), "tok-client-1")
	require.NoError(t, err)
	assert.Equal(t, client.Name, view.Client.Name)
	assert.Len(t, view.Projects, 1)
	assert.Len(t, view.Contracts, 1)
	assert.Equal(t, "Vena Pictures", view.CompanyName)
	assert.Equal(t, "#112233", view.BrandColor)
	repo.AssertExpectations(t)
}

func TestClientPortalEmptyAccessID(t *testing.T) {
	service := newTestService(new(MockPortalRepository), new(MockProfileRepository))

	_, err := service.ClientPortal(context.Background(), "   ")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestClientPortalUnknownToken(t *testing.T) {
	repo := new(MockPortalRepository)
	repo.On("ClientByAccessID", mock.Anything, "tok-missing").Return(uuid.Nil, nil, shared.ErrNotFound)

	service := newTestService(repo, new(MockProfileRepository))

	_, err := service.ClientPortal(context.Background(), "tok-missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestClientPortalBrandingFallback(t *testing.T) {
	ownerID := uuid.New()
	client := &crm.Client{ID: uuid.New(), Name: "Citra Lestari", PortalAccessID: "tok-client-2"}

	repo := new(MockPortalRepository)
	repo.On("ClientByAccessID", mock.Anything, "tok-client-2").Return(ownerID, client, nil)
	repo.On("ProjectsByClient", mock.Anything, ownerID, client.ID).Return([]production.Project{}, nil)
	repo.On("ContractsByClient", mock.Anything, ownerID, client.ID).Return([]crm.Contract{}, nil)

	profileRepo := new(MockProfileRepository)
	profileRepo.On("FindByOwner", mock.Anything, ownerID).Return(nil, shared.ErrProfileMissing)

	service := newTestService(repo, profileRepo)

	view, err := service.ClientPortal(context.Background(), "tok-client-2")
	require.NoError(t, err)
	assert.Empty(t, view.CompanyName)
	assert.Equal(t, identity.DefaultBrandColor, view.BrandColor)
}

func TestClientPortalListFailure(t *testing.T) {
	ownerID := uuid.New()
	client := &crm.Client{ID: uuid.New(), PortalAccessID: "tok-client-3"}
	remoteErr := shared.NewRemoteError("list portal projects", errors.New("connection refused"))

	repo := new(MockPortalRepository)
	repo.On("ClientByAccessID", mock.Anything, "tok-client-3").Return(ownerID, client, nil)
	repo.On("ProjectsByClient", mock.Anything, ownerID, client.ID).Return(nil, remoteErr)

	service := newTestService(repo, new(MockProfileRepository))

	_, err := service.ClientPortal(context.Background(), "tok-client-3")
	require.Error(t, err)
	assert.True(t, shared.IsRemote(err))
}

func TestFreelancerPortal(t *testing.T) {
	ownerID := uuid.New()
	member := &team.Member{
		ID:             uuid.New(),
		Name:           "Rina Wijaya",
		PortalAccessID: "tok-member-1",
	}
	payments := []team.ProjectPayment{{ID: uuid.New(), TeamMemberName: member.Name}}
	rewards := []team.RewardLedgerEntry{{ID: uuid.New(), Description: "Bonus proyek"}}

	repo := new(MockPortalRepository)
	repo.On("MemberByAccessID", mock.Anything, "tok-member-1").Return(ownerID, member, nil)
	repo.On("PaymentsByMember", mock.Anything, ownerID, member.ID).Return(payments, nil)
	repo.On("RewardsByMember", mock.Anything, ownerID, member.ID).Return(rewards, nil)

	profileRepo := new(MockProfileRepository)
	profileRepo.On("FindByOwner", mock.Anything, ownerID).Return(&identity.Profile{
		CompanyName: "Vena Pictures",
		BrandColor:  "",
	}, nil)

	service := newTestService(repo, profileRepo)

	view, err := service.FreelancerPortal(context.Background(), "tok-member-1")
	require.NoError(t, err)
	assert.Equal(t, member.Name, view.Member.Name)
	assert.Len(t, view.Payments, 1)
	assert.Len(t, view.Rewards, 1)
	assert.Equal(t, "Vena Pictures", view.CompanyName)
	assert.Equal(t, identity.DefaultBrandColor, view.BrandColor)
	repo.AssertExpectations(t)
}

func TestFreelancerPortalEmptyAccessID(t *testing.T) {
	service := newTestService(new(MockPortalRepository), new(MockProfileRepository))

	_, err := service.FreelancerPortal(context.Background(), "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
