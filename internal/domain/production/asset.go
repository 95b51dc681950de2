package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetStatus represents the availability of a piece of equipment
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "Tersedia"
	AssetStatusInUse       AssetStatus = "Digunakan"
	AssetStatusMaintenance AssetStatus = "Perbaikan"
)

// Asset is a piece of equipment owned by the studio
type Asset struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchaseDate  string          `json:"purchaseDate"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SerialNumber  string          `json:"serialNumber"`
	Status        AssetStatus     `json:"status"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}
