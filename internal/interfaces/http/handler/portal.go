package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vena/backend/internal/application/portal"
)

// PortalHandler serves the public client and freelancer portal pages. The
// routes carry an opaque access token instead of a session, so no JWT
// middleware guards them.
type PortalHandler struct {
	BaseHandler
	service *portal.Service
}

// NewPortalHandler creates a portal handler
func NewPortalHandler(service *portal.Service) *PortalHandler {
	return &PortalHandler{service: service}
}

// ClientPortal resolves a client portal access token into the portal view.
func (h *PortalHandler) ClientPortal(c *gin.Context) {
	view, err := h.service.ClientPortal(c.Request.Context(), c.Param("accessId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// FreelancerPortal resolves a freelancer portal access token into the portal view.
func (h *PortalHandler) FreelancerPortal(c *gin.Context) {
	view, err := h.service.FreelancerPortal(c.Request.Context(), c.Param("accessId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}
