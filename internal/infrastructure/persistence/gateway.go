package persistence

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/crm"
	"github.com/vena/backend/internal/domain/finance"
	"github.com/vena/backend/internal/domain/notification"
	"github.com/vena/backend/internal/domain/production"
	"github.com/vena/backend/internal/domain/team"
	"github.com/vena/backend/internal/infrastructure/persistence/models"
)

// Gateways bundles one Collection per entity collection. All collections
// share the same connection and retry policy; notifications alone list
// newest-first so the most recent entry leads.
type Gateways struct {
	Clients         *Collection[models.ClientRow, crm.Client]
	Leads           *Collection[models.LeadRow, crm.Lead]
	Feedback        *Collection[models.FeedbackRow, crm.ClientFeedback]
	Contracts       *Collection[models.ContractRow, crm.Contract]
	Projects        *Collection[models.ProjectRow, production.Project]
	Packages        *Collection[models.PackageRow, production.Package]
	AddOns          *Collection[models.AddOnRow, production.AddOn]
	PromoCodes      *Collection[models.PromoCodeRow, production.PromoCode]
	SOPs            *Collection[models.SOPRow, production.SOP]
	Assets          *Collection[models.AssetRow, production.Asset]
	SocialPosts     *Collection[models.SocialMediaPostRow, production.SocialMediaPost]
	Transactions    *Collection[models.TransactionRow, finance.Transaction]
	Cards           *Collection[models.CardRow, finance.Card]
	Pockets         *Collection[models.PocketRow, finance.FinancialPocket]
	TeamMembers     *Collection[models.TeamMemberRow, team.Member]
	ProjectPayments *Collection[models.TeamProjectPaymentRow, team.ProjectPayment]
	PaymentRecords  *Collection[models.TeamPaymentRecordRow, team.PaymentRecord]
	RewardEntries   *Collection[models.RewardLedgerEntryRow, team.RewardLedgerEntry]
	Notifications   *Collection[models.NotificationRow, notification.Notification]
}

// NewGateways wires every entity collection against db
func NewGateways(db *gorm.DB, logger *zap.Logger, opts GatewayOptions) *Gateways {
	return &Gateways{
		Clients:         NewCollection(db, logger, "clients", OrderOldestFirst, models.ClientRowFromRecord, opts),
		Leads:           NewCollection(db, logger, "leads", OrderOldestFirst, models.LeadRowFromRecord, opts),
		Feedback:        NewCollection(db, logger, "client_feedback", OrderOldestFirst, models.FeedbackRowFromRecord, opts),
		Contracts:       NewCollection(db, logger, "contracts", OrderOldestFirst, models.ContractRowFromRecord, opts),
		Projects:        NewCollection(db, logger, "projects", OrderOldestFirst, models.ProjectRowFromRecord, opts),
		Packages:        NewCollection(db, logger, "packages", OrderOldestFirst, models.PackageRowFromRecord, opts),
		AddOns:          NewCollection(db, logger, "add_ons", OrderOldestFirst, models.AddOnRowFromRecord, opts),
		PromoCodes:      NewCollection(db, logger, "promo_codes", OrderOldestFirst, models.PromoCodeRowFromRecord, opts),
		SOPs:            NewCollection(db, logger, "sops", OrderOldestFirst, models.SOPRowFromRecord, opts),
		Assets:          NewCollection(db, logger, "assets", OrderOldestFirst, models.AssetRowFromRecord, opts),
		SocialPosts:     NewCollection(db, logger, "social_media_posts", OrderOldestFirst, models.SocialMediaPostRowFromRecord, opts),
		Transactions:    NewCollection(db, logger, "transactions", OrderOldestFirst, models.TransactionRowFromRecord, opts),
		Cards:           NewCollection(db, logger, "cards", OrderOldestFirst, models.CardRowFromRecord, opts),
		Pockets:         NewCollection(db, logger, "pockets", OrderOldestFirst, models.PocketRowFromRecord, opts),
		TeamMembers:     NewCollection(db, logger, "team_members", OrderOldestFirst, models.TeamMemberRowFromRecord, opts),
		ProjectPayments: NewCollection(db, logger, "team_project_payments", OrderOldestFirst, models.TeamProjectPaymentRowFromRecord, opts),
		PaymentRecords:  NewCollection(db, logger, "team_payment_records", OrderOldestFirst, models.TeamPaymentRecordRowFromRecord, opts),
		RewardEntries:   NewCollection(db, logger, "reward_ledger_entries", OrderOldestFirst, models.RewardLedgerEntryRowFromRecord, opts),
		Notifications:   NewCollection(db, logger, "notifications", OrderNewestFirst, models.NotificationRowFromRecord, opts),
	}
}

// Bundle exposes the collections behind the gateway interfaces the workspace
// store consumes.
func (g *Gateways) Bundle() syncstore.Gateways {
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
