package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vena/backend/internal/domain/shared"
)

// Role represents the access level of a user
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

// Password cost for bcrypt
const bcryptCost = 12

// User is the authenticated principal. A user owns every entity collection in
// the system; members additionally carry an explicit set of permitted views.
type User struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	FullName     string        `json:"fullName"`
	CompanyName  string        `json:"companyName"`
	Role         Role          `json:"role"`
	Permissions  []shared.View `json:"permissions"`
	IsApproved   bool          `json:"isApproved"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// NewUser creates a user with a freshly hashed password.
func NewUser(email, password, fullName, companyName string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		CompanyName:  companyName,
		Role:         role,
		Permissions:  []shared.View{},
		IsApproved:   role == RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HasPermission reports whether the user's permission set contains view.
// Role semantics (Admin allows all, Dashboard always allowed) live in the
// navigation gate, not here.
func (u *User) HasPermission(view shared.View) bool {
	for _, p := range u.Permissions {
		if p == view {
			return true
		}
	}
	return false
}

// UserRepository provides access to user records
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
}
