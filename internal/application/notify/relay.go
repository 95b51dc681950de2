// Package notify implements the best-effort notification relay: events are
// persisted into the owner's notification collection and, when the business
// profile carries a contact address, forwarded over the mail channel.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/notification"
	"github.com/vena/backend/internal/domain/shared"
)

// Outcome reports how far a relayed notification traveled
type Outcome int

const (
	// OutcomeNoIdentity means no loaded workspace exists for the owner; the
	// event is dropped silently, which is the intended fire-and-forget shape
	OutcomeNoIdentity Outcome = iota
	// OutcomeFailed means the remote write failed; nothing was recorded
	OutcomeFailed
	// OutcomeStored means the notification was persisted and mirrored
	OutcomeStored
	// OutcomeDelivered means it was additionally sent over the mail channel
	OutcomeDelivered
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeNoIdentity:
		return "no_identity"
	case OutcomeFailed:
		return "failed"
	case OutcomeStored:
		return "stored"
	case OutcomeDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// Payload is the caller-facing shape of a notification event
type Payload struct {
	Title   string             `json:"title" binding:"required"`
	Message string             `json:"message" binding:"required"`
	Icon    string             `json:"icon"`
	Link    *notification.Link `json:"link,omitempty"`
}

// Mailer is the outbound send channel for notification mail
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Relay fans a notification event out to the owner's mirrored collection
// and the mail channel. All failures are absorbed and logged; callers get
// an Outcome, never an error.
type Relay struct {
	stores *syncstore.Manager
	mailer Mailer
	logger *zap.Logger
}

func NewRelay(stores *syncstore.Manager, mailer Mailer, logger *zap.Logger) *Relay {
	return &Relay{
		stores: stores,
		mailer: mailer,
		logger: logger.Named("notify"),
	}
}

// Add records a notification for the owner. Without a loaded workspace the
// event is dropped with a log line only.
func (r *Relay) Add(ctx context.Context, ownerID uuid.UUID, payload Payload) Outcome {
	store, ok := r.stores.Peek(ownerID)
	if !ok {
		r.logger.Warn("Dropping notification, no active workspace",
			zap.String("owner_id", ownerID.String()),
			zap.String("title", payload.Title))
		return OutcomeNoIdentity
	}

	rec := notification.Notification{
		Title:     payload.Title,
		Message:   payload.Message,
		Icon:      payload.Icon,
		Link:      payload.Link,
		Timestamp: time.Now().UTC(),
	}

	stored, err := store.Notifications.Create(ctx, rec)
	if err != nil {
		r.logger.Error("Failed to persist notification",
			zap.String("owner_id", ownerID.String()),
			zap.String("title", payload.Title),
			zap.Error(err))
		return OutcomeFailed
	}

	profile := store.Profile()
	if r.mailer == nil || profile == nil || profile.Email == "" {
		return OutcomeStored
	}

	body := fmt.Sprintf("%s\n\n%s", stored.Title, stored.Message)
	if err := r.mailer.Send(ctx, profile.Email, stored.Title, body); err != nil {
		r.logger.Warn("Notification stored but mail delivery failed",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return OutcomeStored
	}
	return OutcomeDelivered
}

// MarkRead flips one notification's read flag
func (r *Relay) MarkRead(ctx context.Context, ownerID, notificationID uuid.UUID) error {
	store, ok := r.stores.Peek(ownerID)
	if !ok {
		return shared.ErrUnauthenticated
	}
	rec, found := store.Notifications.Get(notificationID)
	if !found {
		return shared.ErrNotFound
	}
	if rec.IsRead {
		return nil
	}
	rec.IsRead = true
	_, err := store.Notifications.Update(ctx, notificationID, rec)
	return err
}

// MarkAllRead flips every unread notification. The first remote failure
// stops the sweep.
func (r *Relay) MarkAllRead(ctx context.Context, ownerID uuid.UUID) error {
	store, ok := r.stores.Peek(ownerID)
	if !ok {
		return shared.ErrUnauthenticated
	}
	for _, rec := range store.Notifications.Items() {
		if rec.IsRead {
			continue
		}
		rec.IsRead = true
		if _, err := store.Notifications.Update(ctx, rec.ID, rec); err != nil {
			return err
		}
	}
	return nil
}
