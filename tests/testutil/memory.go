package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/crm"
	"github.com/vena/backend/internal/domain/finance"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/notification"
	"github.com/vena/backend/internal/domain/production"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/domain/team"
)

// MemoryGateway is an in-memory syncstore.Gateway for tests. Records are
// held per owner in insertion order.
type MemoryGateway[R any] struct {
	mu     sync.Mutex
	name   string
	idOf   func(R) uuid.UUID
	withID func(R, uuid.UUID) R
	byID   map[uuid.UUID]R
	order  []uuid.UUID
	owners map[uuid.UUID]uuid.UUID
	err    error
}

// NewMemoryGateway creates an empty gateway for one collection.
func NewMemoryGateway[R any](name string, idOf func(R) uuid.UUID, withID func(R, uuid.UUID) R) *MemoryGateway[R] {
	return &MemoryGateway[R]{
		name:   name,
		idOf:   idOf,
		withID: withID,
		byID:   make(map[uuid.UUID]R),
		owners: make(map[uuid.UUID]uuid.UUID),
	}
}

// Name returns the collection name.
func (g *MemoryGateway[R]) Name() string { return g.name }

// Fail makes every subsequent call return err. Pass nil to recover.
func (g *MemoryGateway[R]) Fail(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
}

// List returns the owner's records in insertion order.
func (g *MemoryGateway[R]) List(ctx context.Context, ownerID uuid.UUID) ([]R, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	out := make([]R, 0)
	for _, id := range g.order {
		if g.owners[id] == ownerID {
			out = append(out, g.byID[id])
		}
	}
	return out, nil
}

// Insert stores a record, assigning an id when none is given.
func (g *MemoryGateway[R]) Insert(ctx context.Context, ownerID, id uuid.UUID, rec R) (R, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var zero R
	if g.err != nil {
		return zero, g.err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	rec = g.withID(rec, id)
	g.byID[id] = rec
	g.owners[id] = ownerID
	g.order = append(g.order, id)
	return rec, nil
}

// Update replaces an owner's record or reports shared.ErrNotFound.
func (g *MemoryGateway[R]) Update(ctx context.Context, ownerID, id uuid.UUID, rec R) (R, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var zero R
	if g.err != nil {
		return zero, g.err
	}
	if _, ok := g.byID[id]; !ok || g.owners[id] != ownerID {
		return zero, shared.ErrNotFound
	}
	rec = g.withID(rec, id)
	g.byID[id] = rec
	return rec, nil
}

// Delete removes an owner's record or reports shared.ErrNotFound.
func (g *MemoryGateway[R]) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return g.err
	}
	if _, ok := g.byID[id]; !ok || g.owners[id] != ownerID {
		return shared.ErrNotFound
	}
	delete(g.byID, id)
	delete(g.owners, id)
	for i, existing := range g.order {
		if existing == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return nil
}

// MemoryGateways bundles one in-memory gateway per entity collection so a
// full workspace store can be loaded without a database.
type MemoryGateways struct {
	Clients         *MemoryGateway[crm.Client]
	Leads           *MemoryGateway[crm.Lead]
	Feedback        *MemoryGateway[crm.ClientFeedback]
	Contracts       *MemoryGateway[crm.Contract]
	Projects        *MemoryGateway[production.Project]
	Packages        *MemoryGateway[production.Package]
	AddOns          *MemoryGateway[production.AddOn]
	PromoCodes      *MemoryGateway[production.PromoCode]
	SOPs            *MemoryGateway[production.SOP]
	Assets          *MemoryGateway[production.Asset]
	SocialPosts     *MemoryGateway[production.SocialMediaPost]
	Transactions    *MemoryGateway[finance.Transaction]
	Cards           *MemoryGateway[finance.Card]
	Pockets         *MemoryGateway[finance.FinancialPocket]
	TeamMembers     *MemoryGateway[team.Member]
	ProjectPayments *MemoryGateway[team.ProjectPayment]
	PaymentRecords  *MemoryGateway[team.PaymentRecord]
	RewardEntries   *MemoryGateway[team.RewardLedgerEntry]
	Notifications   *MemoryGateway[notification.Notification]
}

// NewMemoryGateways creates a fresh in-memory remote, one gateway per
// collection.
func NewMemoryGateways() *MemoryGateways {
	return &MemoryGateways{
		Clients: NewMemoryGateway("clients",
			func(r crm.Client) uuid.UUID { return r.ID },
			func(r crm.Client, id uuid.UUID) crm.Client { r.ID = id; return r }),
		Leads: NewMemoryGateway("leads",
			func(r crm.Lead) uuid.UUID { return r.ID },
			func(r crm.Lead, id uuid.UUID) crm.Lead { r.ID = id; return r }),
		Feedback: NewMemoryGateway("client_feedback",
			func(r crm.ClientFeedback) uuid.UUID { return r.ID },
			func(r crm.ClientFeedback, id uuid.UUID) crm.ClientFeedback { r.ID = id; return r }),
		Contracts: NewMemoryGateway("contracts",
			func(r crm.Contract) uuid.UUID { return r.ID },
			func(r crm.Contract, id uuid.UUID) crm.Contract { r.ID = id; return r }),
		Projects: NewMemoryGateway("projects",
			func(r production.Project) uuid.UUID { return r.ID },
			func(r production.Project, id uuid.UUID) production.Project { r.ID = id; return r }),
		Packages: NewMemoryGateway("packages",
			func(r production.Package) uuid.UUID { return r.ID },
			func(r production.Package, id uuid.UUID) production.Package { r.ID = id; return r }),
		AddOns: NewMemoryGateway("add_ons",
			func(r production.AddOn) uuid.UUID { return r.ID },
			func(r production.AddOn, id uuid.UUID) production.AddOn { r.ID = id; return r }),
		PromoCodes: NewMemoryGateway("promo_codes",
			func(r production.PromoCode) uuid.UUID { return r.ID },
			func(r production.PromoCode, id uuid.UUID) production.PromoCode { r.ID = id; return r }),
		SOPs: NewMemoryGateway("sops",
			func(r production.SOP) uuid.UUID { return r.ID },
			func(r production.SOP, id uuid.UUID) production.SOP { r.ID = id; return r }),
		Assets: NewMemoryGateway("assets",
			func(r production.Asset) uuid.UUID { return r.ID },
			func(r production.Asset, id uuid.UUID) production.Asset { r.ID = id; return r }),
		SocialPosts: NewMemoryGateway("social_media_posts",
			func(r production.SocialMediaPost) uuid.UUID { return r.ID },
			func(r production.SocialMediaPost, id uuid.UUID) production.SocialMediaPost { r.ID = id; return r }),
		Transactions: NewMemoryGateway("transactions",
			func(r finance.Transaction) uuid.UUID { return r.ID },
			func(r finance.Transaction, id uuid.UUID) finance.Transaction { r.ID = id; return r }),
		Cards: NewMemoryGateway("cards",
			func(r finance.Card) uuid.UUID { return r.ID },
			func(r finance.Card, id uuid.UUID) finance.Card { r.ID = id; return r }),
		Pockets: NewMemoryGateway("pockets",
			func(r finance.FinancialPocket) uuid.UUID { return r.ID },
			func(r finance.FinancialPocket, id uuid.UUID) finance.FinancialPocket { r.ID = id; return r }),
		TeamMembers: NewMemoryGateway("team_members",
			func(r team.Member) uuid.UUID { return r.ID },
			func(r team.Member, id uuid.UUID) team.Member { r.ID = id; return r }),
		ProjectPayments: NewMemoryGateway("team_project_payments",
			func(r team.ProjectPayment) uuid.UUID { return r.ID },
			func(r team.ProjectPayment, id uuid.UUID) team.ProjectPayment { r.ID = id; return r }),
		PaymentRecords: NewMemoryGateway("team_payment_records",
			func(r team.PaymentRecord) uuid.UUID { return r.ID },
			func(r team.PaymentRecord, id uuid.UUID) team.PaymentRecord { r.ID = id; return r }),
		RewardEntries: NewMemoryGateway("reward_ledger_entries",
			func(r team.RewardLedgerEntry) uuid.UUID { return r.ID },
			func(r team.RewardLedgerEntry, id uuid.UUID) team.RewardLedgerEntry { r.ID = id; return r }),
		Notifications: NewMemoryGateway("notifications",
			func(r notification.Notification) uuid.UUID { return r.ID },
			func(r notification.Notification, id uuid.UUID) notification.Notification { r.ID = id; return r }),
	}
}

// Bundle exposes the gateways in the shape the workspace store consumes.
func (g *MemoryGateways) Bundle() syncstore.Gateways {
	return syncstore.Gateways{
		Clients:         g.Clients,
		Leads:           g.Leads,
		Feedback:        g.Feedback,
		Contracts:       g.Contracts,
		Projects:        g.Projects,
		Packages:        g.Packages,
		AddOns:          g.AddOns,
		PromoCodes:      g.PromoCodes,
		SOPs:            g.SOPs,
		Assets:          g.Assets,
		SocialPosts:     g.SocialPosts,
		Transactions:    g.Transactions,
		Cards:           g.Cards,
		Pockets:         g.Pockets,
		TeamMembers:     g.TeamMembers,
		ProjectPayments: g.ProjectPayments,
		PaymentRecords:  g.PaymentRecords,
		RewardEntries:   g.RewardEntries,
		Notifications:   g.Notifications,
	}
}

// MemoryProfileRepo is an in-memory identity.ProfileRepository for tests.
type MemoryProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*identity.Profile
	err      error
}

// NewMemoryProfileRepo creates an empty profile repository.
func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{profiles: make(map[uuid.UUID]*identity.Profile)}
}

// Fail makes every subsequent call return err. Pass nil to recover.
func (r *MemoryProfileRepo) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// FindByOwner returns the owner's profile or shared.ErrProfileMissing.
func (r *MemoryProfileRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*identity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[ownerID]
	if !ok {
		return nil, shared.ErrProfileMissing
	}
	copied := *p
	return &copied, nil
}

// Create stores a profile keyed by its owner.
func (r *MemoryProfileRepo) Create(ctx context.Context, profile *identity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	copied := *profile
	r.profiles[profile.AdminUserID] = &copied
	return nil
}

// Update replaces an existing profile or reports shared.ErrNotFound.
func (r *MemoryProfileRepo) Update(ctx context.Context, profile *identity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.profiles[profile.AdminUserID]; !ok {
		return shared.ErrNotFound
	}
	copied := *profile
	r.profiles[profile.AdminUserID] = &copied
	return nil
}
