package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType is how a promo code's value is applied
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoCode is a discount code redeemable on public bookings
type PromoCode struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	IsActive      bool            `json:"isActive"`
	UsageCount    int             `json:"usageCount"`
	MaxUsage      int             `json:"maxUsage"`
	ExpiryDate    string          `json:"expiryDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}
