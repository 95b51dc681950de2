package crm

import (
	"time"

	"github.com/google/uuid"
)

// SatisfactionLevel is the self-reported satisfaction of a client
type SatisfactionLevel string

const (
	SatisfactionVeryHappy   SatisfactionLevel = "Sangat Puas"
	SatisfactionHappy       SatisfactionLevel = "Puas"
	SatisfactionNeutral     SatisfactionLevel = "Biasa Saja"
	SatisfactionUnhappy     SatisfactionLevel = "Tidak Puas"
)

// ClientFeedback is one survey response submitted through the public
// feedback form.
type ClientFeedback struct {
	ID           uuid.UUID         `json:"id"`
	ClientName   string            `json:"clientName"`
	Satisfaction SatisfactionLevel `json:"satisfaction"`
	Rating       int               `json:"rating"`
	Feedback     string            `json:"feedback"`
	Date         string            `json:"date"`
	CreatedAt    time.Time         `json:"createdAt"`
}
