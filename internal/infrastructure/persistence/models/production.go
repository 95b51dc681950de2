package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vena/backend/internal/domain/production"
)

// ProjectRow is the remote row shape of a production.Project. Collection
// columns are jsonb; a NULL column always transforms to an empty slice or
// map, never to nil.
type ProjectRow struct {
	BaseRow
	ClientID                    uuid.UUID                             `gorm:"column:client_id;type:uuid;index"`
	ProjectName                 string                                `gorm:"column:project_name;type:varchar(300);not null"`
	ClientName                  string                                `gorm:"column:client_name;type:varchar(200)"`
	ProjectType                 string                                `gorm:"column:project_type;type:varchar(100)"`
	PackageName                 string                                `gorm:"column:package_name;type:varchar(200)"`
	PackageID                   uuid.UUID                             `gorm:"column:package_id;type:uuid"`
	AddOns                      JSONSlice[production.AddOn]           `gorm:"column:add_ons;type:jsonb"`
	Date                        string                                `gorm:"type:varchar(30)"`
	DeadlineDate                string                                `gorm:"column:deadline_date;type:varchar(30)"`
	Location                    string                                `gorm:"type:varchar(300)"`
	Progress                    int                                   `gorm:"not null;default:0"`
	Status                      string                                `gorm:"type:varchar(100)"`
	ActiveSubStatuses           JSONSlice[string]                     `gorm:"column:active_sub_statuses;type:jsonb"`
	TotalCost                   decimal.Decimal                       `gorm:"column:total_cost;type:decimal(18,2);not null;default:0"`
	AmountPaid                  decimal.Decimal                       `gorm:"column:amount_paid;type:decimal(18,2);not null;default:0"`
	PaymentStatus               production.PaymentStatus              `gorm:"column:payment_status;type:varchar(50)"`
	Team                        JSONSlice[production.TeamAssignment]  `gorm:"type:jsonb"`
	Notes                       string                                `gorm:"type:text"`
	Accommodation               string                                `gorm:"type:text"`
	DriveLink                   string                                `gorm:"column:drive_link;type:text"`
	ClientDriveLink             string                                `gorm:"column:client_drive_link;type:text"`
	FinalDriveLink              string                                `gorm:"column:final_drive_link;type:text"`
	StartTime                   string                                `gorm:"column:start_time;type:varchar(20)"`
	EndTime                     string                                `gorm:"column:end_time;type:varchar(20)"`
	Image                       string                                `gorm:"type:text"`
	Revisions                   JSONSlice[production.Revision]        `gorm:"type:jsonb"`
	PromoCodeID                 string                                `gorm:"column:promo_code_id;type:varchar(64)"`
	DiscountAmount              decimal.Decimal                       `gorm:"column:discount_amount;type:decimal(18,2);not null;default:0"`
	ShippingDetails             string                                `gorm:"column:shipping_details;type:text"`
	DPProofURL                  string                                `gorm:"column:dp_proof_url;type:text"`
	PrintingDetails             JSONSlice[production.PrintingItem]    `gorm:"column:printing_details;type:jsonb"`
	PrintingCost                decimal.Decimal                       `gorm:"column:printing_cost;type:decimal(18,2);not null;default:0"`
	TransportCost               decimal.Decimal                       `gorm:"column:transport_cost;type:decimal(18,2);not null;default:0"`
	IsEditingConfirmedByClient  bool                                  `gorm:"column:is_editing_confirmed_by_client;not null;default:false"`
	IsPrintingConfirmedByClient bool                                  `gorm:"column:is_printing_confirmed_by_client;not null;default:false"`
	IsDeliveryConfirmedByClient bool                                  `gorm:"column:is_delivery_confirmed_by_client;not null;default:false"`
	ConfirmedSubStatuses        JSONSlice[string]                     `gorm:"column:confirmed_sub_statuses;type:jsonb"`
	ClientSubStatusNotes        JSONMap                               `gorm:"column:client_sub_status_notes;type:jsonb"`
	SubStatusConfirmationSentAt JSONMap                               `gorm:"column:sub_status_confirmation_sent_at;type:jsonb"`
	CompletedDigitalItems       JSONSlice[string]                     `gorm:"column:completed_digital_items;type:jsonb"`
	InvoiceSignature            string                                `gorm:"column:invoice_signature;type:text"`
	CustomSubStatuses           JSONSlice[string]                     `gorm:"column:custom_sub_statuses;type:jsonb"`
	BookingStatus               production.BookingStatus              `gorm:"column:booking_status;type:varchar(50)"`
	RejectionReason             string                                `gorm:"column:rejection_reason;type:text"`
	ChatHistory                 JSONSlice[production.ChatEntry]       `gorm:"column:chat_history;type:jsonb"`
}

// TableName returns the table name for GORM
func (ProjectRow) TableName() string { return "projects" }

// ToRecord converts the row to its application record
func (r ProjectRow) ToRecord() production.Project {
	return production.Project{
		ID:                          r.ID,
		ClientID:                    r.ClientID,
		ProjectName:                 r.ProjectName,
		ClientName:                  r.ClientName,
		ProjectType:                 r.ProjectType,
		PackageName:                 r.PackageName,
		PackageID:                   r.PackageID,
		AddOns:                      sliceOrEmpty(r.AddOns),
		Date:                        r.Date,
		DeadlineDate:                r.DeadlineDate,
		Location:                    r.Location,
		Progress:                    r.Progress,
		Status:                      r.Status,
		ActiveSubStatuses:           sliceOrEmpty(r.ActiveSubStatuses),
		TotalCost:                   r.TotalCost,
		AmountPaid:                  r.AmountPaid,
		PaymentStatus:               r.PaymentStatus,
		Team:                        sliceOrEmpty(r.Team),
		Notes:                       r.Notes,
		Accommodation:               r.Accommodation,
		DriveLink:                   r.DriveLink,
		ClientDriveLink:             r.ClientDriveLink,
		FinalDriveLink:              r.FinalDriveLink,
		StartTime:                   r.StartTime,
		EndTime:                     r.EndTime,
		Image:                       r.Image,
		Revisions:                   sliceOrEmpty(r.Revisions),
		PromoCodeID:                 r.PromoCodeID,
		DiscountAmount:              r.DiscountAmount,
		ShippingDetails:             r.ShippingDetails,
		DPProofURL:                  r.DPProofURL,
		PrintingDetails:             sliceOrEmpty(r.PrintingDetails),
		PrintingCost:                r.PrintingCost,
		TransportCost:               r.TransportCost,
		IsEditingConfirmedByClient:  r.IsEditingConfirmedByClient,
		IsPrintingConfirmedByClient: r.IsPrintingConfirmedByClient,
		IsDeliveryConfirmedByClient: r.IsDeliveryConfirmedByClient,
		ConfirmedSubStatuses:        sliceOrEmpty(r.ConfirmedSubStatuses),
		ClientSubStatusNotes:        mapOrEmpty(r.ClientSubStatusNotes),
		SubStatusConfirmationSentAt: mapOrEmpty(r.SubStatusConfirmationSentAt),
		CompletedDigitalItems:       sliceOrEmpty(r.CompletedDigitalItems),
		InvoiceSignature:            r.InvoiceSignature,
		CustomSubStatuses:           sliceOrEmpty(r.CustomSubStatuses),
		BookingStatus:               r.BookingStatus,
		RejectionReason:             r.RejectionReason,
		ChatHistory:                 sliceOrEmpty(r.ChatHistory),
		CreatedAt:                   r.CreatedAt,
	}
}

// ProjectRowFromRecord builds the row written back to the remote store
func ProjectRowFromRecord(ownerID, id uuid.UUID, rec production.Project) ProjectRow {
	return ProjectRow{
		BaseRow:                     newBaseRow(ownerID, id, rec.CreatedAt),
		ClientID:                    rec.ClientID,
		ProjectName:                 rec.ProjectName,
		ClientName:                  rec.ClientName,
		ProjectType:                 rec.ProjectType,
		PackageName:                 rec.PackageName,
		PackageID:                   rec.PackageID,
		AddOns:                      JSONSlice[production.AddOn](rec.AddOns),
		Date:                        rec.Date,
		DeadlineDate:                rec.DeadlineDate,
		Location:                    rec.Location,
		Progress:                    rec.Progress,
		Status:                      rec.Status,
		ActiveSubStatuses:           JSONSlice[string](rec.ActiveSubStatuses),
		TotalCost:                   rec.TotalCost,
		AmountPaid:                  rec.AmountPaid,
		PaymentStatus:               rec.PaymentStatus,
		Team:                        JSONSlice[production.TeamAssignment](rec.Team),
		Notes:                       rec.Notes,
		Accommodation:               rec.Accommodation,
		DriveLink:                   rec.DriveLink,
		ClientDriveLink:             rec.ClientDriveLink,
		FinalDriveLink:              rec.FinalDriveLink,
		StartTime:                   rec.StartTime,
		EndTime:                     rec.EndTime,
		Image:                       rec.Image,
		Revisions:                   JSONSlice[production.Revision](rec.Revisions),
		PromoCodeID:                 rec.PromoCodeID,
		DiscountAmount:              rec.DiscountAmount,
		ShippingDetails:             rec.ShippingDetails,
		DPProofURL:                  rec.DPProofURL,
		PrintingDetails:             JSONSlice[production.PrintingItem](rec.PrintingDetails),
		PrintingCost:                rec.PrintingCost,
		TransportCost:               rec.TransportCost,
		IsEditingConfirmedByClient:  rec.IsEditingConfirmedByClient,
		IsPrintingConfirmedByClient: rec.IsPrintingConfirmedByClient,
		IsDeliveryConfirmedByClient: rec.IsDeliveryConfirmedByClient,
		ConfirmedSubStatuses:        JSONSlice[string](rec.ConfirmedSubStatuses),
		ClientSubStatusNotes:        JSONMap(rec.ClientSubStatusNotes),
		SubStatusConfirmationSentAt: JSONMap(rec.SubStatusConfirmationSentAt),
		CompletedDigitalItems:       JSONSlice[string](rec.CompletedDigitalItems),
		InvoiceSignature:            rec.InvoiceSignature,
		CustomSubStatuses:           JSONSlice[string](rec.CustomSubStatuses),
		BookingStatus:               rec.BookingStatus,
		RejectionReason:             rec.RejectionReason,
		ChatHistory:                 JSONSlice[production.ChatEntry](rec.ChatHistory),
	}
}

// PackageRow is the remote row shape of a production.Package
type PackageRow struct {
	BaseRow
	Name                 string                              `gorm:"type:varchar(200);not null"`
	Price                decimal.Decimal                     `gorm:"type:decimal(18,2);not null;default:0"`
	Category             string                              `gorm:"type:varchar(100)"`
	PhysicalItems        JSONSlice[production.PhysicalItem]  `gorm:"column:physical_items;type:jsonb"`
	DigitalItems         JSONSlice[string]                   `gorm:"column:digital_items;type:jsonb"`
	ProcessingTime       string                              `gorm:"column:processing_time;type:varchar(100)"`
	DefaultPrintingCost  decimal.Decimal                     `gorm:"column:default_printing_cost;type:decimal(18,2);not null;default:0"`
	DefaultTransportCost decimal.Decimal                     `gorm:"column:default_transport_cost;type:decimal(18,2);not null;default:0"`
	Photographers        string                              `gorm:"type:varchar(100)"`
	Videographers        string                              `gorm:"type:varchar(100)"`
	CoverImage           string                              `gorm:"column:cover_image;type:text"`
}

// TableName returns the table name for GORM
func (PackageRow) TableName() string { return "packages" }

// ToRecord converts the row to its application record
func (r PackageRow) ToRecord() production.Package {
	return production.Package{
		ID:                   r.ID,
		Name:                 r.Name,
		Price:                r.Price,
		Category:             r.Category,
		PhysicalItems:        sliceOrEmpty(r.PhysicalItems),
		DigitalItems:         sliceOrEmpty(r.DigitalItems),
		ProcessingTime:       r.ProcessingTime,
		DefaultPrintingCost:  r.DefaultPrintingCost,
		DefaultTransportCost: r.DefaultTransportCost,
		Photographers:        r.Photographers,
		Videographers:        r.Videographers,
		CoverImage:           r.CoverImage,
		CreatedAt:            r.CreatedAt,
	}
}

// PackageRowFromRecord builds the row written back to the remote store
func PackageRowFromRecord(ownerID, id uuid.UUID, rec production.Package) PackageRow {
	return PackageRow{
		BaseRow:              newBaseRow(ownerID, id, rec.CreatedAt),
		Name:                 rec.Name,
		Price:                rec.Price,
		Category:             rec.Category,
		PhysicalItems:        JSONSlice[production.PhysicalItem](rec.PhysicalItems),
		DigitalItems:         JSONSlice[string](rec.DigitalItems),
		ProcessingTime:       rec.ProcessingTime,
		DefaultPrintingCost:  rec.DefaultPrintingCost,
		DefaultTransportCost: rec.DefaultTransportCost,
		Photographers:        rec.Photographers,
		Videographers:        rec.Videographers,
		CoverImage:           rec.CoverImage,
	}
}

// AddOnRow is the remote row shape of a production.AddOn
type AddOnRow struct {
	BaseRow
	Name  string          `gorm:"type:varchar(200);not null"`
	Price decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (AddOnRow) TableName() string { return "add_ons" }

// ToRecord converts the row to its application record
func (r AddOnRow) ToRecord() production.AddOn {
	return production.AddOn{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
	}
}

// AddOnRowFromRecord builds the row written back to the remote store
func AddOnRowFromRecord(ownerID, id uuid.UUID, rec production.AddOn) AddOnRow {
	return AddOnRow{
		BaseRow: newBaseRow(ownerID, id, time.Time{}),
		Name:    rec.Name,
		Price:   rec.Price,
	}
}

// PromoCodeRow is the remote row shape of a production.PromoCode
type PromoCodeRow struct {
	BaseRow
	Code          string                  `gorm:"type:varchar(100);not null"`
	DiscountType  production.DiscountType `gorm:"column:discount_type;type:varchar(30)"`
	DiscountValue decimal.Decimal         `gorm:"column:discount_value;type:decimal(18,2);not null;default:0"`
	IsActive      bool                    `gorm:"column:is_active;not null;default:true"`
	UsageCount    int                     `gorm:"column:usage_count;not null;default:0"`
	MaxUsage      int                     `gorm:"column:max_usage;not null;default:0"`
	ExpiryDate    string                  `gorm:"column:expiry_date;type:varchar(30)"`
}

// TableName returns the table name for GORM
func (PromoCodeRow) TableName() string { return "promo_codes" }

// ToRecord converts the row to its application record
func (r PromoCodeRow) ToRecord() production.PromoCode {
	return production.PromoCode{
		ID:            r.ID,
		Code:          r.Code,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		IsActive:      r.IsActive,
		UsageCount:    r.UsageCount,
		MaxUsage:      r.MaxUsage,
		ExpiryDate:    r.ExpiryDate,
		CreatedAt:     r.CreatedAt,
	}
}

// PromoCodeRowFromRecord builds the row written back to the remote store
func PromoCodeRowFromRecord(ownerID, id uuid.UUID, rec production.PromoCode) PromoCodeRow {
	return PromoCodeRow{
		BaseRow:       newBaseRow(ownerID, id, rec.CreatedAt),
		Code:          rec.Code,
		DiscountType:  rec.DiscountType,
		DiscountValue: rec.DiscountValue,
		IsActive:      rec.IsActive,
		UsageCount:    rec.UsageCount,
		MaxUsage:      rec.MaxUsage,
		ExpiryDate:    rec.ExpiryDate,
	}
}

// SOPRow is the remote row shape of a production.SOP
type SOPRow struct {
	BaseRow
	Title       string `gorm:"type:varchar(300);not null"`
	Category    string `gorm:"type:varchar(100)"`
	Content     string `gorm:"type:text"`
	LastUpdated string `gorm:"column:last_updated;type:varchar(30)"`
}

// TableName returns the table name for GORM
func (SOPRow) TableName() string { return "sops" }

// ToRecord converts the row to its application record
func (r SOPRow) ToRecord() production.SOP {
	return production.SOP{
		ID:          r.ID,
		Title:       r.Title,
		Category:    r.Category,
		Content:     r.Content,
		LastUpdated: r.LastUpdated,
		CreatedAt:   r.CreatedAt,
	}
}

// SOPRowFromRecord builds the row written back to the remote store
func SOPRowFromRecord(ownerID, id uuid.UUID, rec production.SOP) SOPRow {
	return SOPRow{
		BaseRow:     newBaseRow(ownerID, id, rec.CreatedAt),
		Title:       rec.Title,
		Category:    rec.Category,
		Content:     rec.Content,
		LastUpdated: rec.LastUpdated,
	}
}

// AssetRow is the remote row shape of a production.Asset
type AssetRow struct {
	BaseRow
	Name          string                 `gorm:"type:varchar(300);not null"`
	Category      string                 `gorm:"type:varchar(100)"`
	PurchaseDate  string                 `gorm:"column:purchase_date;type:varchar(30)"`
	PurchasePrice decimal.Decimal        `gorm:"column:purchase_price;type:decimal(18,2);not null;default:0"`
	SerialNumber  string                 `gorm:"column:serial_number;type:varchar(200)"`
	Status        production.AssetStatus `gorm:"type:varchar(50)"`
	Notes         string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AssetRow) TableName() string { return "assets" }

// ToRecord converts the row to its application record
func (r AssetRow) ToRecord() production.Asset {
	return production.Asset{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		PurchaseDate:  r.PurchaseDate,
		PurchasePrice: r.PurchasePrice,
		SerialNumber:  r.SerialNumber,
		Status:        r.Status,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
	}
}

// AssetRowFromRecord builds the row written back to the remote store
func AssetRowFromRecord(ownerID, id uuid.UUID, rec production.Asset) AssetRow {
	return AssetRow{
		BaseRow:       newBaseRow(ownerID, id, rec.CreatedAt),
		Name:          rec.Name,
		Category:      rec.Category,
		PurchaseDate:  rec.PurchaseDate,
		PurchasePrice: rec.PurchasePrice,
		SerialNumber:  rec.SerialNumber,
		Status:        rec.Status,
		Notes:         rec.Notes,
	}
}

// SocialMediaPostRow is the remote row shape of a production.SocialMediaPost
type SocialMediaPostRow struct {
	BaseRow
	ProjectID     uuid.UUID             `gorm:"column:project_id;type:uuid;index"`
	ClientName    string                `gorm:"column:client_name;type:varchar(200)"`
	PostType      string                `gorm:"column:post_type;type:varchar(100)"`
	Platform      string                `gorm:"type:varchar(50)"`
	ScheduledDate string                `gorm:"column:scheduled_date;type:varchar(30)"`
	Caption       string                `gorm:"type:text"`
	MediaURL      string                `gorm:"column:media_url;type:text"`
	Status        production.PostStatus `gorm:"type:varchar(50)"`
	Notes         string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SocialMediaPostRow) TableName() string { return "social_media_posts" }

// ToRecord converts the row to its application record
func (r SocialMediaPostRow) ToRecord() production.SocialMediaPost {
	return production.SocialMediaPost{
		ID:            r.ID,
		ProjectID:     r.ProjectID,
		ClientName:    r.ClientName,
		PostType:      r.PostType,
		Platform:      r.Platform,
		ScheduledDate: r.ScheduledDate,
		Caption:       r.Caption,
		MediaURL:      r.MediaURL,
		Status:        r.Status,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
	}
}

// SocialMediaPostRowFromRecord builds the row written back to the remote store
func SocialMediaPostRowFromRecord(ownerID, id uuid.UUID, rec production.SocialMediaPost) SocialMediaPostRow {
	return SocialMediaPostRow{
		BaseRow:       newBaseRow(ownerID, id, rec.CreatedAt),
		ProjectID:     rec.ProjectID,
		ClientName:    rec.ClientName,
		PostType:      rec.PostType,
		Platform:      rec.Platform,
		ScheduledDate: rec.ScheduledDate,
		Caption:       rec.Caption,
		MediaURL:      rec.MediaURL,
		Status:        rec.Status,
		Notes:         rec.Notes,
	}
}
