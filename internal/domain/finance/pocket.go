package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PocketType describes the purpose of a financial pocket
type PocketType string

const (
	PocketTypeSaving          PocketType = "Nabung & Bayar"
	PocketTypeLocked          PocketType = "Terkunci"
	PocketTypeShared          PocketType = "Bersama"
	PocketTypeExpense         PocketType = "Anggaran Pengeluaran"
	PocketTypeRewardPool      PocketType = "Tabungan Hadiah Freelancer"
)

// FinancialPocket is an earmarked slice of funds, optionally sourced from a
// card and optionally locked until a date.
type FinancialPocket struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Icon         string          `json:"icon"`
	Type         PocketType      `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	GoalAmount   decimal.Decimal `json:"goalAmount"`
	LockEndDate  string          `json:"lockEndDate"`
	SourceCardID uuid.UUID       `json:"sourceCardId"`
	CreatedAt    time.Time       `json:"createdAt"`
}
