package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vena/backend/internal/domain/finance"
)

// TransactionRow is the remote row shape of a finance.Transaction
type TransactionRow struct {
	BaseRow
	Date        string                  `gorm:"type:varchar(30)"`
	Description string                  `gorm:"type:text"`
	Amount      decimal.Decimal         `gorm:"type:decimal(18,2);not null;default:0"`
	Type        finance.TransactionType `gorm:"type:varchar(30)"`
	ProjectID   uuid.UUID               `gorm:"column:project_id;type:uuid;index"`
	Category    string                  `gorm:"type:varchar(100)"`
	Method      string                  `gorm:"type:varchar(50)"`
	PocketID    uuid.UUID               `gorm:"column:pocket_id;type:uuid"`
	CardID      uuid.UUID               `gorm:"column:card_id;type:uuid"`
}

// TableName returns the table name for GORM
func (TransactionRow) TableName() string { return "transactions" }

// ToRecord converts the row to its application record
func (r TransactionRow) ToRecord() finance.Transaction {
	return finance.Transaction{
		ID:          r.ID,
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
		ProjectID:   r.ProjectID,
		Category:    r.Category,
		Method:      r.Method,
		PocketID:    r.PocketID,
		CardID:      r.CardID,
		CreatedAt:   r.CreatedAt,
	}
}

// TransactionRowFromRecord builds the row written back to the remote store
func TransactionRowFromRecord(ownerID, id uuid.UUID, rec finance.Transaction) TransactionRow {
	return TransactionRow{
		BaseRow:     newBaseRow(ownerID, id, rec.CreatedAt),
		Date:        rec.Date,
		Description: rec.Description,
		Amount:      rec.Amount,
		Type:        rec.Type,
		ProjectID:   rec.ProjectID,
		Category:    rec.Category,
		Method:      rec.Method,
		PocketID:    rec.PocketID,
		CardID:      rec.CardID,
	}
}

// CardRow is the remote row shape of a finance.Card
type CardRow struct {
	BaseRow
	CardHolderName string          `gorm:"column:card_holder_name;type:varchar(200)"`
	BankName       string          `gorm:"column:bank_name;type:varchar(100)"`
	CardType       string          `gorm:"column:card_type;type:varchar(50)"`
	LastFourDigits string          `gorm:"column:last_four_digits;type:varchar(10)"`
	ExpiryDate     string          `gorm:"column:expiry_date;type:varchar(20)"`
	Balance        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ColorGradient  string          `gorm:"column:color_gradient;type:varchar(200)"`
}

// TableName returns the table name for GORM
func (CardRow) TableName() string { return "cards" }

// ToRecord converts the row to its application record
func (r CardRow) ToRecord() finance.Card {
	return finance.Card{
		ID:             r.ID,
		CardHolderName: r.CardHolderName,
		BankName:       r.BankName,
		CardType:       r.CardType,
		LastFourDigits: r.LastFourDigits,
		ExpiryDate:     r.ExpiryDate,
		Balance:        r.Balance,
		ColorGradient:  r.ColorGradient,
		CreatedAt:      r.CreatedAt,
	}
}

// CardRowFromRecord builds the row written back to the remote store
func CardRowFromRecord(ownerID, id uuid.UUID, rec finance.Card) CardRow {
	return CardRow{
		BaseRow:        newBaseRow(ownerID, id, rec.CreatedAt),
		CardHolderName: rec.CardHolderName,
		BankName:       rec.BankName,
		CardType:       rec.CardType,
		LastFourDigits: rec.LastFourDigits,
		ExpiryDate:     rec.ExpiryDate,
		Balance:        rec.Balance,
		ColorGradient:  rec.ColorGradient,
	}
}

// PocketRow is the remote row shape of a finance.FinancialPocket
type PocketRow struct {
	BaseRow
	Name         string             `gorm:"type:varchar(200);not null"`
	Description  string             `gorm:"type:text"`
	Icon         string             `gorm:"type:varchar(50)"`
	Type         finance.PocketType `gorm:"type:varchar(50)"`
	Amount       decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	GoalAmount   decimal.Decimal    `gorm:"column:goal_amount;type:decimal(18,2);not null;default:0"`
	LockEndDate  string             `gorm:"column:lock_end_date;type:varchar(30)"`
	SourceCardID uuid.UUID          `gorm:"column:source_card_id;type:uuid"`
}

// TableName returns the table name for GORM
func (PocketRow) TableName() string { return "pockets" }

// ToRecord converts the row to its application record
func (r PocketRow) ToRecord() finance.FinancialPocket {
	return finance.FinancialPocket{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Icon:         r.Icon,
		Type:         r.Type,
		Amount:       r.Amount,
		GoalAmount:   r.GoalAmount,
		LockEndDate:  r.LockEndDate,
		SourceCardID: r.SourceCardID,
		CreatedAt:    r.CreatedAt,
	}
}

// PocketRowFromRecord builds the row written back to the remote store
func PocketRowFromRecord(ownerID, id uuid.UUID, rec finance.FinancialPocket) PocketRow {
	return PocketRow{
		BaseRow:      newBaseRow(ownerID, id, rec.CreatedAt),
		Name:         rec.Name,
		Description:  rec.Description,
		Icon:         rec.Icon,
		Type:         rec.Type,
		Amount:       rec.Amount,
		GoalAmount:   rec.GoalAmount,
		LockEndDate:  rec.LockEndDate,
		SourceCardID: rec.SourceCardID,
	}
}
