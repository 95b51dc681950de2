package models

import (
	"github.com/google/uuid"

	"github.com/vena/backend/internal/domain/crm"
)

// ClientRow is the remote row shape of a crm.Client
type ClientRow struct {
	BaseRow
	Name           string           `gorm:"type:varchar(200);not null"`
	Email          string           `gorm:"type:varchar(200)"`
	Phone          string           `gorm:"type:varchar(50)"`
	Whatsapp       string           `gorm:"type:varchar(50)"`
	Instagram      string           `gorm:"type:varchar(100)"`
	ClientType     crm.ClientType   `gorm:"column:client_type;type:varchar(50)"`
	Status         crm.ClientStatus `gorm:"type:varchar(50)"`
	Since          string           `gorm:"type:varchar(30)"`
	LastContact    string           `gorm:"column:last_contact;type:varchar(30)"`
	PortalAccessID string           `gorm:"column:portal_access_id;type:varchar(64);index"`
}

// TableName returns the table name for GORM
func (ClientRow) TableName() string { return "clients" }

// ToRecord converts the row to its application record
func (r ClientRow) ToRecord() crm.Client {
	return crm.Client{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Whatsapp:       r.Whatsapp,
		Instagram:      r.Instagram,
		ClientType:     r.ClientType,
		Status:         r.Status,
		Since:          r.Since,
		LastContact:    r.LastContact,
		PortalAccessID: r.PortalAccessID,
		CreatedAt:      r.CreatedAt,
	}
}

// ClientRowFromRecord builds the row written back to the remote store.
// It is the exact inverse of ToRecord on every mapped column.
func ClientRowFromRecord(ownerID, id uuid.UUID, rec crm.Client) ClientRow {
	return ClientRow{
		BaseRow:        newBaseRow(ownerID, id, rec.CreatedAt),
		Name:           rec.Name,
		Email:          rec.Email,
		Phone:          rec.Phone,
		Whatsapp:       rec.Whatsapp,
		Instagram:      rec.Instagram,
		ClientType:     rec.ClientType,
		Status:         rec.Status,
		Since:          rec.Since,
		LastContact:    rec.LastContact,
		PortalAccessID: rec.PortalAccessID,
	}
}

// LeadRow is the remote row shape of a crm.Lead
type LeadRow struct {
	BaseRow
	Name           string             `gorm:"type:varchar(200);not null"`
	ContactChannel crm.ContactChannel `gorm:"column:contact_channel;type:varchar(50)"`
	Location       string             `gorm:"type:varchar(200)"`
	Status         crm.LeadStatus     `gorm:"type:varchar(50)"`
	Date           string             `gorm:"type:varchar(30)"`
	Notes          string             `gorm:"type:text"`
	Whatsapp       string             `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (LeadRow) TableName() string { return "leads" }

// ToRecord converts the row to its application record
func (r LeadRow) ToRecord() crm.Lead {
	return crm.Lead{
		ID:             r.ID,
		Name:           r.Name,
		ContactChannel: r.ContactChannel,
		Location:       r.Location,
		Status:         r.Status,
		Date:           r.Date,
		Notes:          r.Notes,
		Whatsapp:       r.Whatsapp,
		CreatedAt:      r.CreatedAt,
	}
}

// LeadRowFromRecord builds the row written back to the remote store
func LeadRowFromRecord(ownerID, id uuid.UUID, rec crm.Lead) LeadRow {
	return LeadRow{
		BaseRow:        newBaseRow(ownerID, id, rec.CreatedAt),
		Name:           rec.Name,
		ContactChannel: rec.ContactChannel,
		Location:       rec.Location,
		Status:         rec.Status,
		Date:           rec.Date,
		Notes:          rec.Notes,
		Whatsapp:       rec.Whatsapp,
	}
}

// FeedbackRow is the remote row shape of a crm.ClientFeedback
type FeedbackRow struct {
	BaseRow
	ClientName   string                `gorm:"column:client_name;type:varchar(200)"`
	Satisfaction crm.SatisfactionLevel `gorm:"type:varchar(50)"`
	Rating       int                   `gorm:"not null;default:0"`
	Feedback     string                `gorm:"type:text"`
	Date         string                `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (FeedbackRow) TableName() string { return "client_feedback" }

// ToRecord converts the row to its application record
func (r FeedbackRow) ToRecord() crm.ClientFeedback {
	return crm.ClientFeedback{
		ID:           r.ID,
		ClientName:   r.ClientName,
		Satisfaction: r.Satisfaction,
		Rating:       r.Rating,
		Feedback:     r.Feedback,
		Date:         r.Date,
		CreatedAt:    r.CreatedAt,
	}
}

// FeedbackRowFromRecord builds the row written back to the remote store
func FeedbackRowFromRecord(ownerID, id uuid.UUID, rec crm.ClientFeedback) FeedbackRow {
	return FeedbackRow{
		BaseRow:      newBaseRow(ownerID, id, rec.CreatedAt),
		ClientName:   rec.ClientName,
		Satisfaction: rec.Satisfaction,
		Rating:       rec.Rating,
		Feedback:     rec.Feedback,
		Date:         rec.Date,
	}
}

// ContractRow is the remote row shape of a crm.Contract
type ContractRow struct {
	BaseRow
	ContractNumber     string    `gorm:"column:contract_number;type:varchar(100)"`
	ClientID           uuid.UUID `gorm:"column:client_id;type:uuid;index"`
	ProjectID          uuid.UUID `gorm:"column:project_id;type:uuid;index"`
	SigningDate        string    `gorm:"column:signing_date;type:varchar(30)"`
	SigningLocation    string    `gorm:"column:signing_location;type:varchar(200)"`
	ClientName1        string    `gorm:"column:client_name1;type:varchar(200)"`
	ClientAddress1     string    `gorm:"column:client_address1;type:text"`
	ClientPhone1       string    `gorm:"column:client_phone1;type:varchar(50)"`
	ClientName2        string    `gorm:"column:client_name2;type:varchar(200)"`
	ClientAddress2     string    `gorm:"column:client_address2;type:text"`
	ClientPhone2       string    `gorm:"column:client_phone2;type:varchar(50)"`
	ShootingDuration   string    `gorm:"column:shooting_duration;type:varchar(100)"`
	GuaranteedPhotos   string    `gorm:"column:guaranteed_photos;type:varchar(200)"`
	AlbumDetails       string    `gorm:"column:album_details;type:text"`
	DigitalFilesFormat string    `gorm:"column:digital_files_format;type:varchar(100)"`
	OtherItems         string    `gorm:"column:other_items;type:text"`
	PersonnelCount     string    `gorm:"column:personnel_count;type:varchar(100)"`
	DeliveryTimeframe  string    `gorm:"column:delivery_timeframe;type:varchar(100)"`
	DPDate             string    `gorm:"column:dp_date;type:varchar(30)"`
	FinalPaymentDate   string    `gorm:"column:final_payment_date;type:varchar(30)"`
	CancellationPolicy string    `gorm:"column:cancellation_policy;type:text"`
	Jurisdiction       string    `gorm:"type:varchar(200)"`
	VendorSignature    string    `gorm:"column:vendor_signature;type:text"`
	ClientSignature    string    `gorm:"column:client_signature;type:text"`
}

// TableName returns the table name for GORM
func (ContractRow) TableName() string { return "contracts" }

// ToRecord converts the row to its application record
func (r ContractRow) ToRecord() crm.Contract {
	return crm.Contract{
		ID:                 r.ID,
		ContractNumber:     r.ContractNumber,
		ClientID:           r.ClientID,
		ProjectID:          r.ProjectID,
		SigningDate:        r.SigningDate,
		SigningLocation:    r.SigningLocation,
		ClientName1:        r.ClientName1,
		ClientAddress1:     r.ClientAddress1,
		ClientPhone1:       r.ClientPhone1,
		ClientName2:        r.ClientName2,
		ClientAddress2:     r.ClientAddress2,
		ClientPhone2:       r.ClientPhone2,
		ShootingDuration:   r.ShootingDuration,
		GuaranteedPhotos:   r.GuaranteedPhotos,
		AlbumDetails:       r.AlbumDetails,
		DigitalFilesFormat: r.DigitalFilesFormat,
		OtherItems:         r.OtherItems,
		PersonnelCount:     r.PersonnelCount,
		DeliveryTimeframe:  r.DeliveryTimeframe,
		DPDate:             r.DPDate,
		FinalPaymentDate:   r.FinalPaymentDate,
		CancellationPolicy: r.CancellationPolicy,
		Jurisdiction:       r.Jurisdiction,
		VendorSignature:    r.VendorSignature,
		ClientSignature:    r.ClientSignature,
		CreatedAt:          r.CreatedAt,
	}
}

// ContractRowFromRecord builds the row written back to the remote store
func ContractRowFromRecord(ownerID, id uuid.UUID, rec crm.Contract) ContractRow {
	return ContractRow{
		BaseRow:            newBaseRow(ownerID, id, rec.CreatedAt),
		ContractNumber:     rec.ContractNumber,
		ClientID:           rec.ClientID,
		ProjectID:          rec.ProjectID,
		SigningDate:        rec.SigningDate,
		SigningLocation:    rec.SigningLocation,
		ClientName1:        rec.ClientName1,
		ClientAddress1:     rec.ClientAddress1,
		ClientPhone1:       rec.ClientPhone1,
		ClientName2:        rec.ClientName2,
		ClientAddress2:     rec.ClientAddress2,
		ClientPhone2:       rec.ClientPhone2,
		ShootingDuration:   rec.ShootingDuration,
		GuaranteedPhotos:   rec.GuaranteedPhotos,
		AlbumDetails:       rec.AlbumDetails,
		DigitalFilesFormat: rec.DigitalFilesFormat,
		OtherItems:         rec.OtherItems,
		PersonnelCount:     rec.PersonnelCount,
		DeliveryTimeframe:  rec.DeliveryTimeframe,
		DPDate:             rec.DPDate,
		FinalPaymentDate:   rec.FinalPaymentDate,
		CancellationPolicy: rec.CancellationPolicy,
		Jurisdiction:       rec.Jurisdiction,
		VendorSignature:    rec.VendorSignature,
		ClientSignature:    rec.ClientSignature,
	}
}
