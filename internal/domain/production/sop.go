package production

import (
	"time"

	"github.com/google/uuid"
)

// SOP is a standard operating procedure document shared with freelancers
type SOP struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	LastUpdated string    `json:"lastUpdated"`
	CreatedAt   time.Time `json:"createdAt"`
}
