// Package portal serves the public client and freelancer portals. Portal
// pages are reached with an opaque access token instead of a session, so
// every lookup here is read-only and scoped to the single identity the
// token resolves to.
package portal

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vena/backend/internal/domain/crm"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/production"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/domain/team"
)

// Repository resolves portal access tokens and fetches the data each portal
// page shows. Implementations must scope every query to the owner the token
// resolved to.
type Repository interface {
	ClientByAccessID(ctx context.Context, accessID string) (uuid.UUID, *crm.Client, error)
	MemberByAccessID(ctx context.Context, accessID string) (uuid.UUID, *team.Member, error)
	ProjectsByClient(ctx context.Context, ownerID, clientID uuid.UUID) ([]production.Project, error)
	ContractsByClient(ctx context.Context, ownerID, clientID uuid.UUID) ([]crm.Contract, error)
	PaymentsByMember(ctx context.Context, ownerID, memberID uuid.UUID) ([]team.ProjectPayment, error)
	RewardsByMember(ctx context.Context, ownerID, memberID uuid.UUID) ([]team.RewardLedgerEntry, error)
}

// ClientPortalView is the payload of the client portal page
type ClientPortalView struct {
	Client      crm.Client           `json:"client"`
	Projects    []production.Project `json:"projects"`
	Contracts   []crm.Contract       `json:"contracts"`
	CompanyName string               `json:"companyName"`
	BrandColor  string               `json:"brandColor"`
}

// FreelancerPortalView is the payload of the freelancer portal page
type FreelancerPortalView struct {
	Member      team.Member              `json:"member"`
	Payments    []team.ProjectPayment    `json:"payments"`
	Rewards     []team.RewardLedgerEntry `json:"rewards"`
	CompanyName string                   `json:"companyName"`
	BrandColor  string                   `json:"brandColor"`
}

// Service resolves portal views
type Service struct {
	repo        Repository
	profileRepo identity.ProfileRepository
	logger      *zap.Logger
}

// NewService creates a portal service
func NewService(repo Repository, profileRepo identity.ProfileRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		profileRepo: profileRepo,
		logger:      logger.Named("portal"),
	}
}

// ClientPortal resolves a client access token into the client portal view
func (s *Service) ClientPortal(ctx context.Context, accessID string) (*ClientPortalView, error) {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return nil, shared.ErrInvalidInput
	}

	ownerID, client, err := s.repo.ClientByAccessID(ctx, accessID)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.ProjectsByClient(ctx, ownerID, client.ID)
	if err != nil {
		return nil, err
	}
	contracts, err := s.repo.ContractsByClient(ctx, ownerID, client.ID)
	if err != nil {
		return nil, err
	}

	view := &ClientPortalView{
		Client:    *client,
		Projects:  projects,
		Contracts: contracts,
	}
	s.applyBranding(ctx, ownerID, &view.CompanyName, &view.BrandColor)
	return view, nil
}

// FreelancerPortal resolves a freelancer access token into the freelancer
// portal view
func (s *Service) FreelancerPortal(ctx context.Context, accessID string) (*FreelancerPortalView, error) {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return nil, shared.ErrInvalidInput
	}

	ownerID, member, err := s.repo.MemberByAccessID(ctx, accessID)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.PaymentsByMember(ctx, ownerID, member.ID)
	if err != nil {
		return nil, err
	}
	rewards, err := s.repo.RewardsByMember(ctx, ownerID, member.ID)
	if err != nil {
		return nil, err
	}

	view := &FreelancerPortalView{
		Member:   *member,
		Payments: payments,
		Rewards:  rewards,
	}
	s.applyBranding(ctx, ownerID, &view.CompanyName, &view.BrandColor)
	return view, nil
}

// applyBranding fills the vendor branding shown on portal pages. A missing
// profile falls back to the default brand color; it never fails the lookup.
func (s *Service) applyBranding(ctx context.Context, ownerID uuid.UUID, company, color *string) {
	*color = identity.DefaultBrandColor

	profile, err := s.profileRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if !shared.IsProfileMissing(err) {
			s.logger.Warn("Failed to load portal branding", zap.Error(err))
		}
		return
	}
	*company = profile.CompanyName
	if profile.BrandColor != "" {
		*color = profile.BrandColor
	}
}
