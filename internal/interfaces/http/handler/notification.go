package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vena/backend/internal/application/notify"
	"github.com/vena/backend/internal/application/syncstore"
)

// NotificationHandler serves the in-app notification feed and routes new
// notifications through the relay.
type NotificationHandler struct {
	BaseHandler
	stores *syncstore.Manager
	relay  *notify.Relay
}

// NewNotificationHandler creates a notification handler
func NewNotificationHandler(stores *syncstore.Manager, relay *notify.Relay) *NotificationHandler {
	return &NotificationHandler{stores: stores, relay: relay}
}

func (h *NotificationHandler) workspace(c *gin.Context) (*syncstore.Store, bool) {
	user, err := claimsUser(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return nil, false
	}
	store, err := h.stores.Get(c.Request.Context(), user)
	if err != nil {
		h.HandleError(c, err)
		return nil, false
	}
	return store, true
}

// List returns the notification feed, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	h.Success(c, store.Notifications.Items())
}

// UnreadCount returns how many notifications are still unread.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	var count int64
	for _, n := range store.Notifications.Items() {
		if !n.IsRead {
			count++
		}
	}
	h.Success(c, CountData{Count: count})
}

// Create stores a notification and mails the workspace contact address when one is configured.
func (h *NotificationHandler) Create(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	var payload notify.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	outcome := h.relay.Add(c.Request.Context(), store.User().ID, payload)
	h.Created(c, gin.H{"outcome": outcome.String()})
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}
	if err := h.relay.MarkRead(c.Request.Context(), store.User().ID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"read": id})
}

// MarkAllRead marks every notification as read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	if err := h.relay.MarkAllRead(c.Request.Context(), store.User().ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"read": "all"})
}
