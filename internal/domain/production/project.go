package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks how much of the project cost has been settled
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "Belum Bayar"
	PaymentStatusPartial  PaymentStatus = "DP Terbayar"
	PaymentStatusPaid     PaymentStatus = "Lunas"
)

// BookingStatus tracks the lifecycle of a public booking request
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Baru"
	BookingStatusConfirmed BookingStatus = "Terkonfirmasi"
	BookingStatusRejected  BookingStatus = "Ditolak"
)

// TeamAssignment is one freelancer assigned to a project
type TeamAssignment struct {
	MemberID     string          `json:"memberId"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Fee          decimal.Decimal `json:"fee"`
	Reward       decimal.Decimal `json:"reward"`
	SubJob       string          `json:"subJob"`
}

// Revision is one revision request raised by the client and worked by a
// freelancer through the freelancer portal.
type Revision struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	AdminNotes     string `json:"adminNotes"`
	Deadline       string `json:"deadline"`
	FreelancerID   string `json:"freelancerId"`
	Status         string `json:"status"`
	FreelancerNotes string `json:"freelancerNotes"`
	DriveLink      string `json:"driveLink"`
	CompletedDate  string `json:"completedDate"`
}

// PrintingItem is one physical deliverable ordered for a project
type PrintingItem struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	CustomName string        `json:"customName"`
	Details  string          `json:"details"`
	Cost     decimal.Decimal `json:"cost"`
}

// ChatEntry is one message in the client-facing project chat log
type ChatEntry struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Project is the central production record. It references a Client and a
// Package by identifier and carries zero or more team assignments; the
// remote store's constraints maintain referential integrity, not this layer.
type Project struct {
	ID                         uuid.UUID         `json:"id"`
	ClientID                   uuid.UUID         `json:"clientId"`
	ProjectName                string            `json:"projectName"`
	ClientName                 string            `json:"clientName"`
	ProjectType                string            `json:"projectType"`
	PackageName                string            `json:"packageName"`
	PackageID                  uuid.UUID         `json:"packageId"`
	AddOns                     []AddOn           `json:"addOns"`
	Date                       string            `json:"date"`
	DeadlineDate               string            `json:"deadlineDate"`
	Location                   string            `json:"location"`
	Progress                   int               `json:"progress"`
	Status                     string            `json:"status"`
	ActiveSubStatuses          []string          `json:"activeSubStatuses"`
	TotalCost                  decimal.Decimal   `json:"totalCost"`
	AmountPaid                 decimal.Decimal   `json:"amountPaid"`
	PaymentStatus              PaymentStatus     `json:"paymentStatus"`
	Team                       []TeamAssignment  `json:"team"`
	Notes                      string            `json:"notes"`
	Accommodation              string            `json:"accommodation"`
	DriveLink                  string            `json:"driveLink"`
	ClientDriveLink            string            `json:"clientDriveLink"`
	FinalDriveLink             string            `json:"finalDriveLink"`
	StartTime                  string            `json:"startTime"`
	EndTime                    string            `json:"endTime"`
	Image                      string            `json:"image"`
	Revisions                  []Revision        `json:"revisions"`
	PromoCodeID                string            `json:"promoCodeId"`
	DiscountAmount             decimal.Decimal   `json:"discountAmount"`
	ShippingDetails            string            `json:"shippingDetails"`
	DPProofURL                 string            `json:"dpProofUrl"`
	PrintingDetails            []PrintingItem    `json:"printingDetails"`
	PrintingCost               decimal.Decimal   `json:"printingCost"`
	TransportCost              decimal.Decimal   `json:"transportCost"`
	IsEditingConfirmedByClient bool              `json:"isEditingConfirmedByClient"`
	IsPrintingConfirmedByClient bool             `json:"isPrintingConfirmedByClient"`
	IsDeliveryConfirmedByClient bool             `json:"isDeliveryConfirmedByClient"`
	ConfirmedSubStatuses       []string          `json:"confirmedSubStatuses"`
	ClientSubStatusNotes       map[string]string `json:"clientSubStatusNotes"`
	SubStatusConfirmationSentAt map[string]string `json:"subStatusConfirmationSentAt"`
	CompletedDigitalItems      []string          `json:"completedDigitalItems"`
	InvoiceSignature           string            `json:"invoiceSignature"`
	CustomSubStatuses          []string          `json:"customSubStatuses"`
	BookingStatus              BookingStatus     `json:"bookingStatus"`
	RejectionReason            string            `json:"rejectionReason"`
	ChatHistory                []ChatEntry       `json:"chatHistory"`
	CreatedAt                  time.Time         `json:"createdAt"`
}
