package models

import (
	"github.com/google/uuid"

	"github.com/vena/backend/internal/domain/notification"
	"github.com/vena/backend/internal/domain/shared"
)

// NotificationRow is the remote row shape of a notification.Notification.
// The optional navigation link is flattened into link_view / link_action
// columns; a row without link_view transforms to a record without a link.
type NotificationRow struct {
	BaseRow
	Title      string `gorm:"type:varchar(300);not null"`
	Message    string `gorm:"type:text"`
	Icon       string `gorm:"type:varchar(50)"`
	IsRead     bool   `gorm:"column:is_read;not null;default:false"`
	LinkView   string `gorm:"column:link_view;type:varchar(50)"`
	LinkAction string `gorm:"column:link_action;type:varchar(100)"`
}

// TableName returns the table name for GORM
func (NotificationRow) TableName() string { return "notifications" }

// ToRecord converts the row to its application record
func (r NotificationRow) ToRecord() notification.Notification {
	rec := notification.Notification{
		ID:        r.ID,
		Title:     r.Title,
		Message:   r.Message,
		Icon:      r.Icon,
		IsRead:    r.IsRead,
		Timestamp: r.CreatedAt,
	}
	if r.LinkView != "" {
		rec.Link = &notification.Link{
			View:   shared.View(r.LinkView),
			Action: r.LinkAction,
		}
	}
	return rec
}

// NotificationRowFromRecord builds the row written back to the remote store
func NotificationRowFromRecord(ownerID, id uuid.UUID, rec notification.Notification) NotificationRow {
	row := NotificationRow{
		BaseRow: newBaseRow(ownerID, id, rec.Timestamp),
		Title:   rec.Title,
		Message: rec.Message,
		Icon:    rec.Icon,
		IsRead:  rec.IsRead,
	}
	if rec.Link != nil {
		row.LinkView = string(rec.Link.View)
		row.LinkAction = rec.Link.Action
	}
	return row
}
