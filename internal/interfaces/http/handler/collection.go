package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/interfaces/http/middleware"
)

// claimsUser rebuilds the session identity from validated JWT claims. The
// workspace store only needs the owner id and role; no user fetch is done
// per request.
func claimsUser(c *gin.Context) (*identity.User, error) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		return nil, errors.New("no authentication claims")
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &identity.User{
		ID:          id,
		Email:       claims.Email,
		Role:        identity.Role(claims.Role),
		Permissions: viewsFrom(claims.Permissions),
		IsApproved:  claims.IsApproved,
	}, nil
}

// CollectionHandler serves one mirrored entity collection over HTTP. Reads
// come straight from the in-memory mirror; writes go through the gateway
// and reconcile the mirror on success.
type CollectionHandler[R any] struct {
	BaseHandler
	stores *syncstore.Manager
	col    func(*syncstore.Store) *syncstore.Collection[R]
}

// NewCollectionHandler creates a handler for one entity collection
func NewCollectionHandler[R any](stores *syncstore.Manager, col func(*syncstore.Store) *syncstore.Collection[R]) *CollectionHandler[R] {
	return &CollectionHandler[R]{stores: stores, col: col}
}

// workspace resolves the caller's loaded store, replying on failure
func (h *CollectionHandler[R]) workspace(c *gin.Context) (*syncstore.Store, bool) {
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

// List returns the full mirrored collection
func (h *CollectionHandler[R]) List(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	h.Success(c, h.col(store).Items())
}

// Get returns a single mirrored record
func (h *CollectionHandler[R]) Get(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}
	rec, found := h.col(store).Get(id)
	if !found {
		h.NotFound(c, "Record not found")
		return
	}
	h.Success(c, rec)
}

// Create inserts a record and returns the stored result
func (h *CollectionHandler[R]) Create(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	var rec R
	if err := c.ShouldBindJSON(&rec); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	stored, err := h.col(store).Create(c.Request.Context(), rec)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, stored)
}

// Update replaces a record and returns the stored result
func (h *CollectionHandler[R]) Update(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}
	var rec R
	if err := c.ShouldBindJSON(&rec); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	stored, err := h.col(store).Update(c.Request.Context(), id, rec)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stored)
}

// Delete removes a record
func (h *CollectionHandler[R]) Delete(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}
	if err := h.col(store).Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Refresh re-fetches the collection from the remote store
func (h *CollectionHandler[R]) Refresh(c *gin.Context) {
	store, ok := h.workspace(c)
	if !ok {
		return
	}
	if err := h.col(store).Refresh(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.col(store).Items())
}

// Register mounts the CRUD routes on the group
func (h *CollectionHandler[R]) Register(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	rg.Use(guards...)
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.POST("/refresh", h.Refresh)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
