package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vena/backend/internal/domain/team"
)

// TeamMemberRow is the remote row shape of a team.Member
type TeamMemberRow struct {
	BaseRow
	Name             string                          `gorm:"type:varchar(200);not null"`
	Email            string                          `gorm:"type:varchar(200)"`
	Phone            string                          `gorm:"type:varchar(50)"`
	Role             string                          `gorm:"type:varchar(100)"`
	StandardFee      decimal.Decimal                 `gorm:"column:standard_fee;type:decimal(18,2);not null;default:0"`
	NoRek            string                          `gorm:"column:no_rek;type:varchar(100)"`
	RewardBalance    decimal.Decimal                 `gorm:"column:reward_balance;type:decimal(18,2);not null;default:0"`
	Rating           float64                         `gorm:"not null;default:0"`
	PerformanceNotes JSONSlice[team.PerformanceNote] `gorm:"column:performance_notes;type:jsonb"`
	PortalAccessID   string                          `gorm:"column:portal_access_id;type:varchar(64);index"`
}

// TableName returns the table name for GORM
func (TeamMemberRow) TableName() string { return "team_members" }

// ToRecord converts the row to its application record
func (r TeamMemberRow) ToRecord() team.Member {
	return team.Member{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Role:             r.Role,
		StandardFee:      r.StandardFee,
		NoRek:            r.NoRek,
		RewardBalance:    r.RewardBalance,
		Rating:           r.Rating,
		PerformanceNotes: sliceOrEmpty(r.PerformanceNotes),
		PortalAccessID:   r.PortalAccessID,
		CreatedAt:        r.CreatedAt,
	}
}

// TeamMemberRowFromRecord builds the row written back to the remote store
func TeamMemberRowFromRecord(ownerID, id uuid.UUID, rec team.Member) TeamMemberRow {
	return TeamMemberRow{
		BaseRow:          newBaseRow(ownerID, id, rec.CreatedAt),
		Name:             rec.Name,
		Email:            rec.Email,
		Phone:            rec.Phone,
		Role:             rec.Role,
		StandardFee:      rec.StandardFee,
		NoRek:            rec.NoRek,
		RewardBalance:    rec.RewardBalance,
		Rating:           rec.Rating,
		PerformanceNotes: JSONSlice[team.PerformanceNote](rec.PerformanceNotes),
		PortalAccessID:   rec.PortalAccessID,
	}
}

// TeamProjectPaymentRow is the remote row shape of a team.ProjectPayment
type TeamProjectPaymentRow struct {
	BaseRow
	ProjectID      uuid.UUID                 `gorm:"column:project_id;type:uuid;index"`
	TeamMemberName string                    `gorm:"column:team_member_name;type:varchar(200)"`
	TeamMemberID   uuid.UUID                 `gorm:"column:team_member_id;type:uuid;index"`
	Date           string                    `gorm:"type:varchar(30)"`
	Status         team.ProjectPaymentStatus `gorm:"type:varchar(30)"`
	Fee            decimal.Decimal           `gorm:"type:decimal(18,2);not null;default:0"`
	Reward         decimal.Decimal           `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (TeamProjectPaymentRow) TableName() string { return "team_project_payments" }

// ToRecord converts the row to its application record
func (r TeamProjectPaymentRow) ToRecord() team.ProjectPayment {
	return team.ProjectPayment{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		TeamMemberName: r.TeamMemberName,
		TeamMemberID:   r.TeamMemberID,
		Date:           r.Date,
		Status:         r.Status,
		Fee:            r.Fee,
		Reward:         r.Reward,
		CreatedAt:      r.CreatedAt,
	}
}

// TeamProjectPaymentRowFromRecord builds the row written back to the remote store
func TeamProjectPaymentRowFromRecord(ownerID, id uuid.UUID, rec team.ProjectPayment) TeamProjectPaymentRow {
	return TeamProjectPaymentRow{
		BaseRow:        newBaseRow(ownerID, id, rec.CreatedAt),
		ProjectID:      rec.ProjectID,
		TeamMemberName: rec.TeamMemberName,
		TeamMemberID:   rec.TeamMemberID,
		Date:           rec.Date,
		Status:         rec.Status,
		Fee:            rec.Fee,
		Reward:         rec.Reward,
	}
}

// TeamPaymentRecordRow is the remote row shape of a team.PaymentRecord
type TeamPaymentRecordRow struct {
	BaseRow
	RecordNumber      string            `gorm:"column:record_number;type:varchar(100)"`
	TeamMemberID      uuid.UUID         `gorm:"column:team_member_id;type:uuid;index"`
	Date              string            `gorm:"type:varchar(30)"`
	ProjectPaymentIDs JSONSlice[string] `gorm:"column:project_payment_ids;type:jsonb"`
	TotalAmount       decimal.Decimal   `gorm:"column:total_amount;type:decimal(18,2);not null;default:0"`
	VendorSignature   string            `gorm:"column:vendor_signature;type:text"`
}

// TableName returns the table name for GORM
func (TeamPaymentRecordRow) TableName() string { return "team_payment_records" }

// ToRecord converts the row to its application record
func (r TeamPaymentRecordRow) ToRecord() team.PaymentRecord {
	return team.PaymentRecord{
		ID:                r.ID,
		RecordNumber:      r.RecordNumber,
		TeamMemberID:      r.TeamMemberID,
		Date:              r.Date,
		ProjectPaymentIDs: sliceOrEmpty(r.ProjectPaymentIDs),
		TotalAmount:       r.TotalAmount,
		VendorSignature:   r.VendorSignature,
		CreatedAt:         r.CreatedAt,
	}
}

// TeamPaymentRecordRowFromRecord builds the row written back to the remote store
func TeamPaymentRecordRowFromRecord(ownerID, id uuid.UUID, rec team.PaymentRecord) TeamPaymentRecordRow {
	return TeamPaymentRecordRow{
		BaseRow:           newBaseRow(ownerID, id, rec.CreatedAt),
		RecordNumber:      rec.RecordNumber,
		TeamMemberID:      rec.TeamMemberID,
		Date:              rec.Date,
		ProjectPaymentIDs: JSONSlice[string](rec.ProjectPaymentIDs),
		TotalAmount:       rec.TotalAmount,
		VendorSignature:   rec.VendorSignature,
	}
}

// RewardLedgerEntryRow is the remote row shape of a team.RewardLedgerEntry
type RewardLedgerEntryRow struct {
	BaseRow
	TeamMemberID uuid.UUID       `gorm:"column:team_member_id;type:uuid;index"`
	Date         string          `gorm:"type:varchar(30)"`
	Description  string          `gorm:"type:text"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ProjectID    uuid.UUID       `gorm:"column:project_id;type:uuid"`
}

// TableName returns the table name for GORM
func (RewardLedgerEntryRow) TableName() string { return "reward_ledger_entries" }

// ToRecord converts the row to its application record
func (r RewardLedgerEntryRow) ToRecord() team.RewardLedgerEntry {
	return team.RewardLedgerEntry{
		ID:           r.ID,
		TeamMemberID: r.TeamMemberID,
		Date:         r.Date,
		Description:  r.Description,
		Amount:       r.Amount,
		ProjectID:    r.ProjectID,
		CreatedAt:    r.CreatedAt,
	}
}

// RewardLedgerEntryRowFromRecord builds the row written back to the remote store
func RewardLedgerEntryRowFromRecord(ownerID, id uuid.UUID, rec team.RewardLedgerEntry) RewardLedgerEntryRow {
	return RewardLedgerEntryRow{
		BaseRow:      newBaseRow(ownerID, id, rec.CreatedAt),
		TeamMemberID: rec.TeamMemberID,
		Date:         rec.Date,
		Description:  rec.Description,
		Amount:       rec.Amount,
		ProjectID:    rec.ProjectID,
	}
}
