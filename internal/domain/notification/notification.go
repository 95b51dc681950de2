package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/vena/backend/internal/domain/shared"
)

// Link is the optional navigation target attached to a notification: the
// view to open and a contextual action understood by that view.
type Link struct {
	View   shared.View `json:"view"`
	Action string      `json:"action"`
}

// Notification is a user-facing event record. It is created by the relay,
// mutated only to flip the read flag, and never deleted at this layer.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Icon      string    `json:"icon"`
	IsRead    bool      `json:"isRead"`
	Link      *Link     `json:"link,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
