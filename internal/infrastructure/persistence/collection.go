package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vena/backend/internal/domain/shared"
)

// Row is implemented by every persistence row model served through a
// Collection.
type Row[R any] interface {
	ToRecord() R
}

// GatewayOptions bound each remote call. The remote store gives no delivery
// guarantee, so every operation gets a per-attempt timeout and a small
// retry budget with exponential backoff before the failure surfaces as a
// RemoteError.
type GatewayOptions struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultGatewayOptions returns the options used when configuration does not
// override them.
func DefaultGatewayOptions() GatewayOptions {
	return GatewayOptions{
		Timeout:    10 * time.Second,
		MaxRetries: 2,
		RetryDelay: 200 * time.Millisecond,
	}
}

// Order of rows returned by List
type ListOrder string

const (
	OrderOldestFirst ListOrder = "created_at ASC"
	OrderNewestFirst ListOrder = "created_at DESC"
)

// Collection is the owner-scoped gateway for one entity collection. Every
// query is filtered by the owner column; callers never see rows belonging
// to another identity.
type Collection[M Row[R], R any] struct {
	db         *gorm.DB
	logger     *zap.Logger
	name       string
	order      ListOrder
	fromRecord func(ownerID, id uuid.UUID, rec R) M
	opts       GatewayOptions
}

// NewCollection creates a gateway for one entity collection
func NewCollection[M Row[R], R any](
	db *gorm.DB,
	logger *zap.Logger,
	name string,
	order ListOrder,
	fromRecord func(ownerID, id uuid.UUID, rec R) M,
	opts GatewayOptions,
) *Collection[M, R] {
	if opts.Timeout <= 0 {
		opts = DefaultGatewayOptions()
	}
	return &Collection[M, R]{
		db:         db,
		logger:     logger.Named(name),
		name:       name,
		order:      order,
		fromRecord: fromRecord,
		opts:       opts,
	}
}

// Name returns the collection name used in logs and error labels
func (c *Collection[M, R]) Name() string { return c.name }

// List fetches every row owned by ownerID, transformed to records
func (c *Collection[M, R]) List(ctx context.Context, ownerID uuid.UUID) ([]R, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrUnauthenticated
	}
	var rows []M
	err := c.do(ctx, "list "+c.name, func(ctx context.Context) error {
		return c.db.WithContext(ctx).
			Where("owner_id = ?", ownerID).
			Order(string(c.order)).
			Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	records := make([]R, len(rows))
	for i := range rows {
		records[i] = rows[i].ToRecord()
	}
	return records, nil
}

// Insert writes a new row and returns the stored record. A zero record ID
// gets a generated identifier.
func (c *Collection[M, R]) Insert(ctx context.Context, ownerID, id uuid.UUID, rec R) (R, error) {
	var zero R
	if ownerID == uuid.Nil {
		return zero, shared.ErrUnauthenticated
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	row := c.fromRecord(ownerID, id, rec)
	err := c.do(ctx, "insert "+c.name, func(ctx context.Context) error {
		return c.db.WithContext(ctx).Create(&row).Error
	})
	if err != nil {
		return zero, err
	}
	return row.ToRecord(), nil
}

// Update writes the mapped columns of rec to the row with the given id and
// returns the stored record after the write. A missing remote row surfaces
// as shared.ErrNotFound.
func (c *Collection[M, R]) Update(ctx context.Context, ownerID, id uuid.UUID, rec R) (R, error) {
	var zero R
	if ownerID == uuid.Nil {
		return zero, shared.ErrUnauthenticated
	}
	row := c.fromRecord(ownerID, id, rec)
	var updated M
	err := c.do(ctx, "update "+c.name, func(ctx context.Context) error {
		// Select("*") forces every mapped column into the write; a plain
		// struct update would skip zero values and cleared fields would
		// never reach the remote store.
		res := c.db.WithContext(ctx).
			Model(new(M)).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Select("*").
			Omit("id", "owner_id", "created_at").
			Updates(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return c.db.WithContext(ctx).
			Where("id = ? AND owner_id = ?", id, ownerID).
			First(&updated).Error
	})
	if err != nil {
		if shared.IsNotFound(err) {
			return zero, shared.ErrNotFound
		}
		return zero, err
	}
	return updated.ToRecord(), nil
}

// Delete removes the row with the given id. Deleting an already-absent row
// is not an error; the remote end state is the same.
func (c *Collection[M, R]) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return shared.ErrUnauthenticated
	}
	return c.do(ctx, "delete "+c.name, func(ctx context.Context) error {
		return c.db.WithContext(ctx).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Delete(new(M)).Error
	})
}

// do runs one gateway call with per-attempt timeout and bounded retry.
// Not-found is never retried; every other failure retries with doubling
// delay until the budget is spent, then surfaces as a RemoteError.
func (c *Collection[M, R]) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	delay := c.opts.RetryDelay
	var err error
	for attempt := 0; ; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
		err = fn(attemptCtx)
		cancel()
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		if ctx.Err() != nil {
			break
		}
		if attempt >= c.opts.MaxRetries {
			break
		}
		c.logger.Warn("Gateway call failed, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
		select {
		case <-ctx.Done():
			return shared.NewRemoteError(op, ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}
	c.logger.Error("Gateway call failed", zap.String("op", op), zap.Error(err))
	return shared.NewRemoteError(op, err)
}
