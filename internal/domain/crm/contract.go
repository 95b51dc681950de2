package crm

import (
	"time"

	"github.com/google/uuid"
)

// Contract is a signed agreement between the studio and a client for one
// project. Signatures are stored as data URLs captured in the portal.
type Contract struct {
	ID                 uuid.UUID `json:"id"`
	ContractNumber     string    `json:"contractNumber"`
	ClientID           uuid.UUID `json:"clientId"`
	ProjectID          uuid.UUID `json:"projectId"`
	SigningDate        string    `json:"signingDate"`
	SigningLocation    string    `json:"signingLocation"`
	ClientName1        string    `json:"clientName1"`
	ClientAddress1     string    `json:"clientAddress1"`
	ClientPhone1       string    `json:"clientPhone1"`
	ClientName2        string    `json:"clientName2"`
	ClientAddress2     string    `json:"clientAddress2"`
	ClientPhone2       string    `json:"clientPhone2"`
	ShootingDuration   string    `json:"shootingDuration"`
	GuaranteedPhotos   string    `json:"guaranteedPhotos"`
	AlbumDetails       string    `json:"albumDetails"`
	DigitalFilesFormat string    `json:"digitalFilesFormat"`
	OtherItems         string    `json:"otherItems"`
	PersonnelCount     string    `json:"personnelCount"`
	DeliveryTimeframe  string    `json:"deliveryTimeframe"`
	DPDate             string    `json:"dpDate"`
	FinalPaymentDate   string    `json:"finalPaymentDate"`
	CancellationPolicy string    `json:"cancellationPolicy"`
	Jurisdiction       string    `json:"jurisdiction"`
	VendorSignature    string    `json:"vendorSignature"`
	ClientSignature    string    `json:"clientSignature"`
	CreatedAt          time.Time `json:"createdAt"`
}
