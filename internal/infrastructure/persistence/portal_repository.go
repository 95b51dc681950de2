package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vena/backend/internal/application/portal"
	"github.com/vena/backend/internal/domain/crm"
	"github.com/vena/backend/internal/domain/production"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/domain/team"
	"github.com/vena/backend/internal/infrastructure/persistence/models"
)

// GormPortalRepository implements portal.Repository using GORM. Access
// tokens resolve to exactly one row; every follow-up query carries the
// owner id that row belongs to.
type GormPortalRepository struct {
	db *gorm.DB
}

// NewGormPortalRepository creates a new portal repository
func NewGormPortalRepository(db *gorm.DB) portal.Repository {
	return &GormPortalRepository{db: db}
}

// ClientByAccessID resolves a client portal token
func (r *GormPortalRepository) ClientByAccessID(ctx context.Context, accessID string) (uuid.UUID, *crm.Client, error) {
	var row models.ClientRow
	if err := r.db.WithContext(ctx).Where("portal_access_id = ?", accessID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, shared.ErrNotFound
		}
		return uuid.Nil, nil, shared.NewRemoteError("find client portal", err)
	}
	client := row.ToRecord()
	return row.OwnerID, &client, nil
}

// MemberByAccessID resolves a freelancer portal token
func (r *GormPortalRepository) MemberByAccessID(ctx context.Context, accessID string) (uuid.UUID, *team.Member, error) {
	var row models.TeamMemberRow
	if err := r.db.WithContext(ctx).Where("portal_access_id = ?", accessID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, shared.ErrNotFound
		}
		return uuid.Nil, nil, shared.NewRemoteError("find freelancer portal", err)
	}
	member := row.ToRecord()
	return row.OwnerID, &member, nil
}

// ProjectsByClient returns the client's projects, oldest first
func (r *GormPortalRepository) ProjectsByClient(ctx context.Context, ownerID, clientID uuid.UUID) ([]production.Project, error) {
	var rows []models.ProjectRow
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND client_id = ?", ownerID, clientID).
		Order(string(OrderOldestFirst)).
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewRemoteError("list portal projects", err)
	}
	projects := make([]production.Project, len(rows))
	for i := range rows {
		projects[i] = rows[i].ToRecord()
	}
	return projects, nil
}

// ContractsByClient returns the client's contracts, oldest first
func (r *GormPortalRepository) ContractsByClient(ctx context.Context, ownerID, clientID uuid.UUID) ([]crm.Contract, error) {
	var rows []models.ContractRow
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND client_id = ?", ownerID, clientID).
		Order(string(OrderOldestFirst)).
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewRemoteError("list portal contracts", err)
	}
	contracts := make([]crm.Contract, len(rows))
	for i := range rows {
		contracts[i] = rows[i].ToRecord()
	}
	return contracts, nil
}

// PaymentsByMember returns the freelancer's project payments, oldest first
func (r *GormPortalRepository) PaymentsByMember(ctx context.Context, ownerID, memberID uuid.UUID) ([]team.ProjectPayment, error) {
	var rows []models.TeamProjectPaymentRow
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND team_member_id = ?", ownerID, memberID).
		Order(string(OrderOldestFirst)).
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewRemoteError("list portal payments", err)
	}
	payments := make([]team.ProjectPayment, len(rows))
	for i := range rows {
		payments[i] = rows[i].ToRecord()
	}
	return payments, nil
}

// RewardsByMember returns the freelancer's reward ledger, oldest first
func (r *GormPortalRepository) RewardsByMember(ctx context.Context, ownerID, memberID uuid.UUID) ([]team.RewardLedgerEntry, error) {
	var rows []models.RewardLedgerEntryRow
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND team_member_id = ?", ownerID, memberID).
		Order(string(OrderOldestFirst)).
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewRemoteError("list portal rewards", err)
	}
	rewards := make([]team.RewardLedgerEntry, len(rows))
	for i := range rows {
		rewards[i] = rows[i].ToRecord()
	}
	return rewards, nil
}
