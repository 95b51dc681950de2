package handler

import (
	"time"

	"github.com/google/uuid"

	appidentity "github.com/vena/backend/internal/application/identity"
	"github.com/vena/backend/internal/domain/shared"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the vendor signup request body
type RegisterRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	FullName    string   `json:"fullName" binding:"required"`
	CompanyName string   `json:"companyName"`
	Role        string   `json:"role" binding:"required,oneof=Admin Member"`
	Permissions []string `json:"permissions"`
}

// RefreshTokenRequest represents the token refresh request body
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// AuthUserResponse represents user information in auth responses
type AuthUserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	CompanyName string    `json:"companyName"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	IsApproved  bool      `json:"isApproved"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token TokenResponse    `json:"token"`
	User  AuthUserResponse `json:"user"`
}

// RegisterResponse represents the signup response body
type RegisterResponse struct {
	User AuthUserResponse `json:"user"`
}

// RefreshTokenResponse represents the token refresh response body
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

// LogoutResponse represents the logout response body
type LogoutResponse struct {
	Message string `json:"message"`
}

// CurrentUserResponse represents the current user response body
type CurrentUserResponse struct {
	User AuthUserResponse `json:"user"`
}

// authUserFrom maps application user info onto the wire shape
func authUserFrom(info appidentity.UserInfo) AuthUserResponse {
	permissions := make([]string, len(info.Permissions))
	for i, v := range info.Permissions {
		permissions[i] = string(v)
	}
	return AuthUserResponse{
		ID:          info.ID,
		Email:       info.Email,
		FullName:    info.FullName,
		CompanyName: info.CompanyName,
		Role:        string(info.Role),
		Permissions: permissions,
		IsApproved:  info.IsApproved,
	}
}

// viewsFrom filters raw permission strings down to known views
func viewsFrom(raw []string) []shared.View {
	views := make([]shared.View, 0, len(raw))
	for _, p := range raw {
		if v := shared.View(p); v.Valid() {
			views = append(views, v)
		}
	}
	return views
}
