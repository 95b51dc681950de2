package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for permission middleware
type PermissionConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
	// OnDenied is called when permission is denied (optional)
	OnDenied func(c *gin.Context, view shared.View)
}

// RequireView creates middleware admitting only identities allowed to open
// the view. Admins pass everything, the dashboard is open to every
// authenticated user, members need the view in their permission list.
func RequireView(view shared.View) gin.HandlerFunc {
	return RequireViewWithConfig(view, PermissionConfig{})
}

// RequireViewWithConfig creates view admission middleware with custom config
func RequireViewWithConfig(view shared.View, cfg PermissionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			handlePermissionDenied(c, cfg, view, "No authentication claims found")
			return
		}

		if !viewAllowed(claims.Role, claims.Permissions, view) {
			handlePermissionDenied(c, cfg, view, "User lacks access to view")
			return
		}

		if cfg.Logger != nil {
			cfg.Logger.Debug("View admission passed",
				zap.String("user_id", claims.UserID),
				zap.String("view", string(view)),
			)
		}

		c.Next()
	}
}

// RequireAdmin creates middleware admitting only the Admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireAdminWithConfig(PermissionConfig{})
}

// RequireAdminWithConfig creates admin-only middleware with custom config
func RequireAdminWithConfig(cfg PermissionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			handlePermissionDenied(c, cfg, "", "No authentication claims found")
			return
		}

		if claims.Role != string(identity.RoleAdmin) {
			handlePermissionDenied(c, cfg, "", "Admin role required")
			return
		}

		c.Next()
	}
}

// viewAllowed applies the view admission rules to raw claim values
func viewAllowed(role string, permissions []string, view shared.View) bool {
	if role == string(identity.RoleAdmin) {
		return true
	}
	if view == shared.ViewDashboard {
		return true
	}
	for _, p := range permissions {
		if p == string(view) {
			return true
		}
	}
	return false
}

// handlePermissionDenied handles permission denials
func handlePermissionDenied(c *gin.Context, cfg PermissionConfig, view shared.View, reason string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Permission denied",
			zap.String("view", string(view)),
			zap.String("reason", reason),
			zap.String("path", c.Request.URL.Path),
		)
	}

	if cfg.OnDenied != nil {
		cfg.OnDenied(c, view)
		return
	}

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "ACCESS_DENIED",
			"message": "You do not have access to this view",
		},
	})
}
