package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appidentity "github.com/vena/backend/internal/application/identity"
	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/interfaces/http/middleware"
)

// AuthHandler serves the session lifecycle: login, signup, token refresh,
// logout, and member approval.
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
	stores      *syncstore.Manager
	logger      *zap.Logger
}

// NewAuthHandler creates the handler. stores may be nil in tests that do
// not exercise workspace warm-up.
func NewAuthHandler(authService *appidentity.AuthService, stores *syncstore.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		stores:      stores,
		logger:      logger,
	}
}

// Login authenticates with email and password and returns a token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), appidentity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	// Warm the workspace so the first data read after login is served from
	// memory. A failed warm-up is logged, not surfaced; the next data
	// request retries the load.
	if h.stores != nil {
		if _, err := h.stores.Get(c.Request.Context(), sessionUser(result.User)); err != nil {
			h.logger.Warn("Workspace warm-up failed at login",
				zap.String("user_id", result.User.ID.String()),
				zap.Error(err))
		}
	}

	h.Success(c, LoginResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
		User: authUserFrom(result.User),
	})
}

// Register creates a new account. Members wait for admin approval before
// they can log in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), appidentity.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
		Role:        identity.Role(req.Role),
		Permissions: viewsFrom(req.Permissions),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, RegisterResponse{User: authUserFrom(result.User)})
}

// RefreshToken exchanges a refresh token for a new token pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), appidentity.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RefreshTokenResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
	})
}

// Logout revokes the current session and drops the cached workspace.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		h.BadRequest(c, "Invalid user ID in token")
		return
	}

	err = h.authService.Logout(c.Request.Context(), appidentity.LogoutInput{
		UserID:   userID,
		TokenJTI: claims.ID,
		TokenTTL: claims.GetRemainingTTL(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if h.stores != nil {
		h.stores.Drop(userID)
	}

	h.Success(c, LogoutResponse{Message: "Logged out successfully"})
}

// GetCurrentUser returns the authenticated user's account details.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.authService.GetCurrentUser(c.Request.Context(), appidentity.GetCurrentUserInput{
		UserID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CurrentUserResponse{User: authUserFrom(result.User)})
}

// ApproveUser is the admin-only approval of a registered member account.
func (h *AuthHandler) ApproveUser(c *gin.Context) {
	adminID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	err = h.authService.ApproveUser(c.Request.Context(), appidentity.ApproveUserInput{
		AdminUserID:  adminID,
		TargetUserID: targetID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"approved": targetID})
}

// sessionUser rebuilds the domain identity from authenticated user info
func sessionUser(info appidentity.UserInfo) *identity.User {
	return &identity.User{
		ID:          info.ID,
		Email:       info.Email,
		FullName:    info.FullName,
		CompanyName: info.CompanyName,
		Role:        info.Role,
		Permissions: info.Permissions,
		IsApproved:  info.IsApproved,
	}
}
