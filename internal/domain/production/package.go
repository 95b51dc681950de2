package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PhysicalItem is one printed deliverable included in a package
type PhysicalItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Package is a sellable service bundle
type Package struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Price                decimal.Decimal `json:"price"`
	Category             string          `json:"category"`
	PhysicalItems        []PhysicalItem  `json:"physicalItems"`
	DigitalItems         []string        `json:"digitalItems"`
	ProcessingTime       string          `json:"processingTime"`
	DefaultPrintingCost  decimal.Decimal `json:"defaultPrintingCost"`
	DefaultTransportCost decimal.Decimal `json:"defaultTransportCost"`
	Photographers        string          `json:"photographers"`
	Videographers        string          `json:"videographers"`
	CoverImage           string          `json:"coverImage"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// AddOn is an optional extra sold alongside a package
type AddOn struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
