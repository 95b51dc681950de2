package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/identity"
)

// ProfileHandler serves the workspace profile backing branding, category
// lists and document templates.
type ProfileHandler struct {
	BaseHandler
	stores *syncstore.Manager
}

// NewProfileHandler creates a profile handler
func NewProfileHandler(stores *syncstore.Manager) *ProfileHandler {
	return &ProfileHandler{stores: stores}
}

func (h *ProfileHandler) workspace(c *gin.Context) (*syncstore.Store, bool) {
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

// Get returns the profile of the authenticated workspace owner.
func (h *ProfileHandler) Get(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	h.Success(c, store.Profile())
}

// Update replaces the workspace profile and persists it remotely.
func (h *ProfileHandler) Update(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	var profile identity.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	if err := store.UpdateProfile(c.Request.Context(), &profile); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, store.Profile())
}
