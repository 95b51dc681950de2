package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
)

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client IP for login tracking
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains basic user information returned after login
type UserInfo struct {
	ID          uuid.UUID
	Email       string
	FullName    string
	CompanyName string
	Role        identity.Role
	Permissions []shared.View
	IsApproved  bool
}

// RegisterInput contains the input for vendor signup
type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	CompanyName string
	Role        identity.Role
	Permissions []shared.View
}

// RegisterResult contains the result of a successful signup
type RegisterResult struct {
	User UserInfo
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID   uuid.UUID
	TokenJTI string        // JWT ID for blacklisting
	TokenTTL time.Duration // remaining lifetime of the access token
}

// GetCurrentUserInput contains the input for getting current user info
type GetCurrentUserInput struct {
	UserID uuid.UUID
}

// CurrentUserResult contains the current user's information
type CurrentUserResult struct {
	User UserInfo
}

// ApproveUserInput contains the input for the admin approval operation
type ApproveUserInput struct {
	AdminUserID  uuid.UUID
	TargetUserID uuid.UUID
}

func userInfoFrom(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		CompanyName: user.CompanyName,
		Role:        user.Role,
		Permissions: user.Permissions,
		IsApproved:  user.IsApproved,
	}
}
