package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/infrastructure/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo    identity.UserRepository
	profileRepo identity.ProfileRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	profileRepo identity.ProfileRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		logger:      logger,
	}
}

// Register creates a new vendor account. Admin accounts are approved
// immediately; member accounts wait for an admin to approve them before
// they can log in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	s.logger.Info("Signup attempt", zap.String("email", email))

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	} else if !shared.IsNotFound(err) {
		s.logger.Error("Failed to check existing email", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	user, err := identity.NewUser(email, input.Password, input.FullName, input.CompanyName, input.Role)
	if err != nil {
		return nil, err
	}
	if input.Role == identity.RoleMember {
		user.Permissions = input.Permissions
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == shared.ErrAlreadyExists {
			return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	// Admin accounts get a business profile immediately so the workspace is
	// usable on first login.
	if user.Role == identity.RoleAdmin {
		profile := identity.DefaultProfile(user)
		if err := s.profileRepo.Create(ctx, &profile); err != nil {
			s.logger.Error("Failed to create default profile",
				zap.String("user_id", user.ID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return &RegisterResult{User: userInfoFrom(user)}, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	s.logger.Info("Login attempt", zap.String("email", email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("User not found during login", zap.String("email", email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.IsApproved {
		s.logger.Warn("Login attempt for unapproved account", zap.String("email", email))
		return nil, shared.NewDomainError("ACCOUNT_PENDING", "Account is waiting for approval")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(tokenInputFor(user))
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	s.logger.Info("User logged in",
		zap.String("email", email),
		zap.String("user_id", user.ID.String()),
		zap.String("ip", input.IP))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  userInfoFrom(user),
	}, nil
}

// RefreshToken refreshes the access token using a valid refresh token. The
// identity's permissions are reloaded so changes made since login take
// effect on the next access token.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	refreshClaims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		switch err {
		case auth.ErrExpiredToken:
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
		case auth.ErrInvalidToken:
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		default:
			return nil, shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
		}
	}

	// Reject refresh tokens revoked by logout
	if jti := refreshClaims.ID; jti != "" && s.blacklist != nil {
		revoked, err := s.blacklist.IsBlacklisted(ctx, jti)
		if err != nil {
			s.logger.Error("Failed to check token blacklist", zap.Error(err))
		} else if revoked {
			return nil, shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
		}
	}

	userID, err := uuid.Parse(refreshClaims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("User not found during token refresh", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	if !user.IsApproved {
		return nil, shared.NewDomainError("ACCOUNT_PENDING", "Account is waiting for approval")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, tokenInputFor(user))
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, shared.NewDomainError("TOKEN_ERROR", "Failed to refresh token")
	}

	s.logger.Info("Token refreshed", zap.String("user_id", userID.String()))

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout revokes the caller's access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	s.logger.Info("User logout", zap.String("user_id", input.UserID.String()))

	if s.blacklist == nil || input.TokenJTI == "" {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.TokenTTL); err != nil {
		s.logger.Error("Failed to blacklist token on logout", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}
	return nil
}

// GetCurrentUser retrieves the current user's information
func (s *AuthService) GetCurrentUser(ctx context.Context, input GetCurrentUserInput) (*CurrentUserResult, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	return &CurrentUserResult{User: userInfoFrom(user)}, nil
}

// ApproveUser marks a pending member account as approved. Only admins may
// approve accounts.
func (s *AuthService) ApproveUser(ctx context.Context, input ApproveUserInput) error {
	admin, err := s.userRepo.FindByID(ctx, input.AdminUserID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	if admin.Role != identity.RoleAdmin {
		return shared.ErrForbidden
	}

	target, err := s.userRepo.FindByID(ctx, input.TargetUserID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	if target.IsApproved {
		return nil
	}

	target.IsApproved = true
	target.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, target); err != nil {
		s.logger.Error("Failed to approve user", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to approve account")
	}

	s.logger.Info("User approved",
		zap.String("admin_id", input.AdminUserID.String()),
		zap.String("user_id", input.TargetUserID.String()))
	return nil
}

func tokenInputFor(user *identity.User) auth.GenerateTokenInput {
	permissions := make([]string, 0, len(user.Permissions))
	for _, p := range user.Permissions {
		permissions = append(permissions, string(p))
	}
	return auth.GenerateTokenInput{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        string(user.Role),
		Permissions: permissions,
		IsApproved:  user.IsApproved,
	}
}
