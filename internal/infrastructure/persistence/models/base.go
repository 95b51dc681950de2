package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseRow provides the columns shared by every owner-scoped table. OwnerID
// is the identity that owns the record; every gateway query filters on it.
type BaseRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"column:owner_id;type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func newBaseRow(ownerID, id uuid.UUID, createdAt time.Time) BaseRow {
	return BaseRow{
		ID:        id,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
	}
}
