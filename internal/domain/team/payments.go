package team

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectPaymentStatus tracks whether a freelancer's fee has been paid out
type ProjectPaymentStatus string

const (
	ProjectPaymentUnpaid ProjectPaymentStatus = "Unpaid"
	ProjectPaymentPaid   ProjectPaymentStatus = "Paid"
)

// ProjectPayment is the fee owed to one member for one project
type ProjectPayment struct {
	ID             uuid.UUID            `json:"id"`
	ProjectID      uuid.UUID            `json:"projectId"`
	TeamMemberName string               `json:"teamMemberName"`
	TeamMemberID   uuid.UUID            `json:"teamMemberId"`
	Date           string               `json:"date"`
	Status         ProjectPaymentStatus `json:"status"`
	Fee            decimal.Decimal      `json:"fee"`
	Reward         decimal.Decimal      `json:"reward"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// PaymentRecord is a payout slip covering one or more project payments
type PaymentRecord struct {
	ID                uuid.UUID       `json:"id"`
	RecordNumber      string          `json:"recordNumber"`
	TeamMemberID      uuid.UUID       `json:"teamMemberId"`
	Date              string          `json:"date"`
	ProjectPaymentIDs []string        `json:"projectPaymentIds"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	VendorSignature   string          `json:"vendorSignature"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// RewardLedgerEntry is one credit or debit against a member's reward balance
type RewardLedgerEntry struct {
	ID           uuid.UUID       `json:"id"`
	TeamMemberID uuid.UUID       `json:"teamMemberId"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ProjectID    uuid.UUID       `json:"projectId"`
	CreatedAt    time.Time       `json:"createdAt"`
}
