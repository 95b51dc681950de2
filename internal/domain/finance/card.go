package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Card is a bank card or cash drawer whose balance mirrors its transactions
type Card struct {
	ID             uuid.UUID       `json:"id"`
	CardHolderName string          `json:"cardHolderName"`
	BankName       string          `json:"bankName"`
	CardType       string          `json:"cardType"`
	LastFourDigits string          `json:"lastFourDigits"`
	ExpiryDate     string          `json:"expiryDate"`
	Balance        decimal.Decimal `json:"balance"`
	ColorGradient  string          `json:"colorGradient"`
	CreatedAt      time.Time       `json:"createdAt"`
}
