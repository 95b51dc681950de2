package team

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PerformanceNote is one dated remark about a freelancer's work
type PerformanceNote struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Note string `json:"note"`
	Type string `json:"type"`
}

// Member is a freelancer the studio assigns to projects. PortalAccessID is
// the opaque token used for the freelancer portal.
type Member struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Role             string            `json:"role"`
	StandardFee      decimal.Decimal   `json:"standardFee"`
	NoRek            string            `json:"noRek"`
	RewardBalance    decimal.Decimal   `json:"rewardBalance"`
	Rating           float64           `json:"rating"`
	PerformanceNotes []PerformanceNote `json:"performanceNotes"`
	PortalAccessID   string            `json:"portalAccessId"`
	CreatedAt        time.Time         `json:"createdAt"`
}
