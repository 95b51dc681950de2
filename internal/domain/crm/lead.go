package crm

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus represents where a lead sits in the funnel
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "Sedang Diskusi"
	LeadStatusFollowUp   LeadStatus = "Menunggu Follow Up"
	LeadStatusConverted  LeadStatus = "Dikonversi"
	LeadStatusRejected   LeadStatus = "Ditolak"
)

// ContactChannel is how a lead first reached the studio
type ContactChannel string

const (
	ChannelWhatsApp  ContactChannel = "WhatsApp"
	ChannelInstagram ContactChannel = "Instagram"
	ChannelWebsite   ContactChannel = "Website"
	ChannelReferral  ContactChannel = "Referral"
	ChannelOther     ContactChannel = "Lainnya"
)

// Lead is a prospective client captured from any contact channel, including
// the public lead form.
type Lead struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	ContactChannel ContactChannel `json:"contactChannel"`
	Location       string         `json:"location"`
	Status         LeadStatus     `json:"status"`
	Date           string         `json:"date"`
	Notes          string         `json:"notes"`
	Whatsapp       string         `json:"whatsapp"`
	CreatedAt      time.Time      `json:"createdAt"`
}
