package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType separates money in from money out
type TransactionType string

const (
	TransactionIncome  TransactionType = "Pemasukan"
	TransactionExpense TransactionType = "Pengeluaran"
)

// Transaction is one ledger entry, optionally attributed to a project and
// drawn against a card or pocket.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	ProjectID   uuid.UUID       `json:"projectId"`
	Category    string          `json:"category"`
	Method      string          `json:"method"`
	PocketID    uuid.UUID       `json:"pocketId"`
	CardID      uuid.UUID       `json:"cardId"`
	CreatedAt   time.Time       `json:"createdAt"`
}
