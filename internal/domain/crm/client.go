package crm

import (
	"time"

	"github.com/google/uuid"
)

// ClientStatus represents the lifecycle state of a client
type ClientStatus string

const (
	ClientStatusProspect ClientStatus = "Prospek"
	ClientStatusActive   ClientStatus = "Aktif"
	ClientStatusInactive ClientStatus = "Tidak Aktif"
	ClientStatusLost     ClientStatus = "Hilang"
)

// ClientType distinguishes one-off from repeat business
type ClientType string

const (
	ClientTypeDirect ClientType = "Langsung"
	ClientTypeVendor ClientType = "Vendor"
)

// Client is a customer of the studio. PortalAccessID is the opaque token a
// client uses to reach their read-only portal without authenticating.
type Client struct {
	ID             uuid.UUID    `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Whatsapp       string       `json:"whatsapp"`
	Instagram      string       `json:"instagram"`
	ClientType     ClientType   `json:"clientType"`
	Status         ClientStatus `json:"status"`
	Since          string       `json:"since"`
	LastContact    string       `json:"lastContact"`
	PortalAccessID string       `json:"portalAccessId"`
	CreatedAt      time.Time    `json:"createdAt"`
}
