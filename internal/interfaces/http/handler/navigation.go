package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vena/backend/internal/application/navigation"
	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
)

// NavigationHandler resolves hash route fragments to views. Works with or
// without a session; unauthenticated callers only reach the public routes.
type NavigationHandler struct {
	BaseHandler
	stores *syncstore.Manager
}

// NewNavigationHandler creates a navigation handler
func NewNavigationHandler(stores *syncstore.Manager) *NavigationHandler {
	return &NavigationHandler{stores: stores}
}

// Resolve maps a hash fragment to a view, redirect and public-page palette.
func (h *NavigationHandler) Resolve(c *gin.Context) {
	fragment := c.Query("route")

	// Session is optional here. A parse failure just means no identity.
	user, err := claimsUser(c)
	if err != nil {
		user = nil
	}

	brandColor := identity.DefaultBrandColor
	if user != nil {
		if store, ok := h.stores.Peek(user.ID); ok {
			if profile := store.Profile(); profile != nil && profile.BrandColor != "" {
				brandColor = profile.BrandColor
			}
		}
	}

	h.Success(c, navigation.Resolve(fragment, user, brandColor))
}

// Permissions returns every view the authenticated user may open.
func (h *NavigationHandler) Permissions(c *gin.Context) {
	user, err := claimsUser(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	var views []string
	for _, view := range shared.AllViews {
		if navigation.HasPermission(user, view) {
			views = append(views, string(view))
		}
	}
	h.Success(c, gin.H{"views": views})
}
