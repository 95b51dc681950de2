package syncstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vena/backend/internal/domain/shared"
)

// Gateway is the remote side of one entity collection. The persistence layer
// provides the implementation; the store never touches rows directly.
type Gateway[R any] interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]R, error)
	Insert(ctx context.Context, ownerID, id uuid.UUID, rec R) (R, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, rec R) (R, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Name() string
}

// Collection pairs a remote gateway with its local mirror. Writes go remote
// first; the mirror changes only after the remote store has accepted the
// write, so a failed round trip leaves local state exactly as it was.
type Collection[R any] struct {
	mu      sync.Mutex
	ownerID uuid.UUID
	gateway Gateway[R]
	mirror  *Mirror[R]
	logger  *zap.Logger
}

// NewCollection creates a collection bound to one owner's data
func NewCollection[R any](ownerID uuid.UUID, gateway Gateway[R], mirror *Mirror[R], logger *zap.Logger) *Collection[R] {
	return &Collection[R]{
		ownerID: ownerID,
		gateway: gateway,
		mirror:  mirror,
		logger:  logger.Named(gateway.Name()),
	}
}

// Name returns the collection name
func (c *Collection[R]) Name() string { return c.gateway.Name() }

// Items returns a snapshot of the mirrored records
func (c *Collection[R]) Items() []R { return c.mirror.Snapshot() }

// Get returns the mirrored record with the given id
func (c *Collection[R]) Get(id uuid.UUID) (R, bool) { return c.mirror.Get(id) }

// Len returns the number of mirrored records
func (c *Collection[R]) Len() int { return c.mirror.Len() }

// load fetches the full remote collection into the mirror
func (c *Collection[R]) load(ctx context.Context) error {
	records, err := c.gateway.List(ctx, c.ownerID)
	if err != nil {
		return err
	}
	c.mirror.Replace(records)
	return nil
}

// Create inserts a record remotely and mirrors the stored result
func (c *Collection[R]) Create(ctx context.Context, rec R) (R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, err := c.gateway.Insert(ctx, c.ownerID, uuid.Nil, rec)
	if err != nil {
		var zero R
		return zero, err
	}
	c.mirror.Add(stored)
	return stored, nil
}

// Update writes a record remotely and mirrors the stored result. Updating a
// record the remote store no longer has is a no-op locally; the stale mirror
// entry is dropped instead.
func (c *Collection[R]) Update(ctx context.Context, id uuid.UUID, rec R) (R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, err := c.gateway.Update(ctx, c.ownerID, id, rec)
	if err != nil {
		if shared.IsNotFound(err) {
			if c.mirror.Remove(id) {
				c.logger.Warn("Dropped stale mirror entry on update",
					zap.String("id", id.String()))
			}
		}
		var zero R
		return zero, err
	}
	// Set only replaces an existing mirror entry. A record the mirror never
	// held stays absent until the next refresh.
	c.mirror.Set(stored)
	return stored, nil
}

// Delete removes a record remotely, then from the mirror
func (c *Collection[R]) Delete(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.gateway.Delete(ctx, c.ownerID, id); err != nil {
		return err
	}
	c.mirror.Remove(id)
	return nil
}

// Refresh re-fetches the remote collection, replacing the mirror
func (c *Collection[R]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}
