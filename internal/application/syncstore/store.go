package syncstore

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vena/backend/internal/domain/crm"
	"github.com/vena/backend/internal/domain/finance"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/notification"
	"github.com/vena/backend/internal/domain/production"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/domain/team"
)

// State is the lifecycle of a workspace store
type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Gateways bundles the remote side of every entity collection the store
// mirrors. The persistence layer satisfies each interface with one
// owner-scoped gateway.
type Gateways struct {
	Clients         Gateway[crm.Client]
	Leads           Gateway[crm.Lead]
	Feedback        Gateway[crm.ClientFeedback]
	Contracts       Gateway[crm.Contract]
	Projects        Gateway[production.Project]
	Packages        Gateway[production.Package]
	AddOns          Gateway[production.AddOn]
	PromoCodes      Gateway[production.PromoCode]
	SOPs            Gateway[production.SOP]
	Assets          Gateway[production.Asset]
	SocialPosts     Gateway[production.SocialMediaPost]
	Transactions    Gateway[finance.Transaction]
	Cards           Gateway[finance.Card]
	Pockets         Gateway[finance.FinancialPocket]
	TeamMembers     Gateway[team.Member]
	ProjectPayments Gateway[team.ProjectPayment]
	PaymentRecords  Gateway[team.PaymentRecord]
	RewardEntries   Gateway[team.RewardLedgerEntry]
	Notifications   Gateway[notification.Notification]
}

// Store is one authenticated identity's synchronized workspace: the local
// mirror of every entity collection plus the business profile. A store
// loads once, serves snapshots from memory, and applies writes remote-first.
type Store struct {
	user        *identity.User
	profileRepo identity.ProfileRepository
	logger      *zap.Logger

	state atomic.Int32

	mu      sync.RWMutex
	profile *identity.Profile

	Clients         *Collection[crm.Client]
	Leads           *Collection[crm.Lead]
	Feedback        *Collection[crm.ClientFeedback]
	Contracts       *Collection[crm.Contract]
	Projects        *Collection[production.Project]
	Packages        *Collection[production.Package]
	AddOns          *Collection[production.AddOn]
	PromoCodes      *Collection[production.PromoCode]
	SOPs            *Collection[production.SOP]
	Assets          *Collection[production.Asset]
	SocialPosts     *Collection[production.SocialMediaPost]
	Transactions    *Collection[finance.Transaction]
	Cards           *Collection[finance.Card]
	Pockets         *Collection[finance.FinancialPocket]
	TeamMembers     *Collection[team.Member]
	ProjectPayments *Collection[team.ProjectPayment]
	PaymentRecords  *Collection[team.PaymentRecord]
	RewardEntries   *Collection[team.RewardLedgerEntry]
	Notifications   *Collection[notification.Notification]
}

// New creates an unloaded store for the given user. The user must be
// non-nil; without an authenticated identity there is no workspace.
func New(user *identity.User, gw Gateways, profileRepo identity.ProfileRepository, logger *zap.Logger) (*Store, error) {
	if user == nil {
		return nil, shared.ErrUnauthenticated
	}
	ownerID := user.ID
	logger = logger.With(zap.String("owner_id", ownerID.String()))

	s := &Store{
		user:        user,
		profileRepo: profileRepo,
		logger:      logger,
	}

	s.Clients = NewCollection(ownerID, gw.Clients, NewMirror(func(r crm.Client) uuid.UUID { return r.ID }, false), logger)
	s.Leads = NewCollection(ownerID, gw.Leads, NewMirror(func(r crm.Lead) uuid.UUID { return r.ID }, false), logger)
	s.Feedback = NewCollection(ownerID, gw.Feedback, NewMirror(func(r crm.ClientFeedback) uuid.UUID { return r.ID }, false), logger)
	s.Contracts = NewCollection(ownerID, gw.Contracts, NewMirror(func(r crm.Contract) uuid.UUID { return r.ID }, false), logger)
	s.Projects = NewCollection(ownerID, gw.Projects, NewMirror(func(r production.Project) uuid.UUID { return r.ID }, false), logger)
	s.Packages = NewCollection(ownerID, gw.Packages, NewMirror(func(r production.Package) uuid.UUID { return r.ID }, false), logger)
	s.AddOns = NewCollection(ownerID, gw.AddOns, NewMirror(func(r production.AddOn) uuid.UUID { return r.ID }, false), logger)
	s.PromoCodes = NewCollection(ownerID, gw.PromoCodes, NewMirror(func(r production.PromoCode) uuid.UUID { return r.ID }, false), logger)
	s.SOPs = NewCollection(ownerID, gw.SOPs, NewMirror(func(r production.SOP) uuid.UUID { return r.ID }, false), logger)
	s.Assets = NewCollection(ownerID, gw.Assets, NewMirror(func(r production.Asset) uuid.UUID { return r.ID }, false), logger)
	s.SocialPosts = NewCollection(ownerID, gw.SocialPosts, NewMirror(func(r production.SocialMediaPost) uuid.UUID { return r.ID }, false), logger)
	s.Transactions = NewCollection(ownerID, gw.Transactions, NewMirror(func(r finance.Transaction) uuid.UUID { return r.ID }, false), logger)
	s.Cards = NewCollection(ownerID, gw.Cards, NewMirror(func(r finance.Card) uuid.UUID { return r.ID }, false), logger)
	s.Pockets = NewCollection(ownerID, gw.Pockets, NewMirror(func(r finance.FinancialPocket) uuid.UUID { return r.ID }, false), logger)
	s.TeamMembers = NewCollection(ownerID, gw.TeamMembers, NewMirror(func(r team.Member) uuid.UUID { return r.ID }, false), logger)
	s.ProjectPayments = NewCollection(ownerID, gw.ProjectPayments, NewMirror(func(r team.ProjectPayment) uuid.UUID { return r.ID }, false), logger)
	s.PaymentRecords = NewCollection(ownerID, gw.PaymentRecords, NewMirror(func(r team.PaymentRecord) uuid.UUID { return r.ID }, false), logger)
	s.RewardEntries = NewCollection(ownerID, gw.RewardEntries, NewMirror(func(r team.RewardLedgerEntry) uuid.UUID { return r.ID }, false), logger)
	// Newest notification first, matching the prepend on delivery
	s.Notifications = NewCollection(ownerID, gw.Notifications, NewMirror(func(r notification.Notification) uuid.UUID { return r.ID }, true), logger)

	return s, nil
}

// User returns the authenticated identity the store belongs to
func (s *Store) User() *identity.User { return s.user }

// State returns the store's lifecycle state
func (s *Store) State() State { return State(s.state.Load()) }

// Profile returns the business profile loaded for this workspace
func (s *Store) Profile() *identity.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetProfile replaces the mirrored profile after a successful remote write
func (s *Store) SetProfile(profile *identity.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
}

// loader is one collection fetch inside Load
type loader struct {
	name string
	load func(ctx context.Context) error
}

func (s *Store) loaders() []loader {
	return []loader{
		{s.Clients.Name(), s.Clients.Refresh},
		{s.Leads.Name(), s.Leads.Refresh},
		{s.Feedback.Name(), s.Feedback.Refresh},
		{s.Contracts.Name(), s.Contracts.Refresh},
		{s.Projects.Name(), s.Projects.Refresh},
		{s.Packages.Name(), s.Packages.Refresh},
		{s.AddOns.Name(), s.AddOns.Refresh},
		{s.PromoCodes.Name(), s.PromoCodes.Refresh},
		{s.SOPs.Name(), s.SOPs.Refresh},
		{s.Assets.Name(), s.Assets.Refresh},
		{s.SocialPosts.Name(), s.SocialPosts.Refresh},
		{s.Transactions.Name(), s.Transactions.Refresh},
		{s.Cards.Name(), s.Cards.Refresh},
		{s.Pockets.Name(), s.Pockets.Refresh},
		{s.TeamMembers.Name(), s.TeamMembers.Refresh},
		{s.ProjectPayments.Name(), s.ProjectPayments.Refresh},
		{s.PaymentRecords.Name(), s.PaymentRecords.Refresh},
		{s.RewardEntries.Name(), s.RewardEntries.Refresh},
		{s.Notifications.Name(), s.Notifications.Refresh},
	}
}

// Load performs the initial full fetch of the workspace: the business
// profile plus every entity collection, concurrently. A missing profile is
// replaced with defaults so the workspace stays usable; a remote failure on
// the profile fails the whole load. Individual collection failures are
// tolerated: the failed collection stays empty and the store still becomes
// ready.
func (s *Store) Load(ctx context.Context) error {
	s.state.Store(int32(StateLoading))

	profile, err := s.profileRepo.FindByOwner(ctx, s.user.ID)
	if err != nil {
		if shared.IsProfileMissing(err) {
			s.logger.Warn("No business profile found, using defaults")
			defaults := identity.DefaultProfile(s.user)
			profile = &defaults
		} else {
			s.logger.Error("Failed to load business profile", zap.Error(err))
			s.state.Store(int32(StateFailed))
			return err
		}
	}
	s.SetProfile(profile)

	loaders := s.loaders()
	var wg sync.WaitGroup
	failures := make([]error, len(loaders))

	for i, l := range loaders {
		wg.Add(1)
		go func(i int, l loader) {
			defer wg.Done()
			if err := l.load(ctx); err != nil {
				failures[i] = err
				s.logger.Warn("Collection load failed, serving empty mirror",
					zap.String("collection", l.name),
					zap.Error(err))
			}
		}(i, l)
	}
	wg.Wait()

	failed := 0
	for _, err := range failures {
		if err != nil {
			failed++
		}
	}
	if failed == len(loaders) {
		// Nothing loaded at all; treat as a dead remote
		s.state.Store(int32(StateFailed))
		return shared.NewRemoteError("load workspace", failures[0])
	}

	s.state.Store(int32(StateReady))
	s.logger.Info("Workspace loaded",
		zap.Int("collections", len(loaders)),
		zap.Int("failed", failed))
	return nil
}

// UpdateProfile writes the business profile remotely, then mirrors it
func (s *Store) UpdateProfile(ctx context.Context, profile *identity.Profile) error {
	profile.AdminUserID = s.user.ID
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if shared.IsNotFound(err) {
			// First write for a defaulted profile
			if err := s.profileRepo.Create(ctx, profile); err != nil {
				return err
			}
			s.SetProfile(profile)
			return nil
		}
		return err
	}
	s.SetProfile(profile)
	return nil
}
