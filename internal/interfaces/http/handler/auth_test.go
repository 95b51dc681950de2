package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appidentity "github.com/vena/backend/internal/application/identity"
	"github.com/vena/backend/internal/application/syncstore"
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/infrastructure/auth"
	"github.com/vena/backend/internal/infrastructure/config"
	"github.com/vena/backend/internal/interfaces/http/dto"
	"github.com/vena/backend/internal/interfaces/http/middleware"
	"github.com/vena/backend/tests/testutil"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

type authFixture struct {
	handler  *AuthHandler
	userRepo *mockUserRepo
	stores   *syncstore.Manager
	jwt      *auth.JWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "vena-test",
	})

	userRepo := new(mockUserRepo)
	profileRepo := testutil.NewMemoryProfileRepo()
	service := appidentity.NewAuthService(userRepo, profileRepo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())

	stores := syncstore.NewManager(testutil.NewMemoryGateways().Bundle(), profileRepo, zap.NewNop())

	return &authFixture{
		handler:  NewAuthHandler(service, stores, zap.NewNop()),
		userRepo: userRepo,
		stores:   stores,
		jwt:      jwtService,
	}
}

func newStoredUser(t *testing.T, role identity.Role, approved bool) *identity.User {
	t.Helper()
	user, err := identity.NewUser("andi@vena.pictures", "password123", "Andi", "Vena Pictures", role)
	require.NoError(t, err)
	user.IsApproved = approved
	return user
}

func postJSON(t *testing.T, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestAuthHandler_Login(t *testing.T) {
	f := newAuthFixture(t)
	user := newStoredUser(t, identity.RoleAdmin, true)
	f.userRepo.On("FindByEmail", mock.Anything, "andi@vena.pictures").Return(user, nil)

	w, c := postJSON(t, LoginRequest{Email: "andi@vena.pictures", Password: "password123"})
	f.handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	token := data["token"].(map[string]interface{})
	assert.NotEmpty(t, token["access_token"])
	assert.NotEmpty(t, token["refresh_token"])
	assert.Equal(t, "Bearer", token["token_type"])

	userData := data["user"].(map[string]interface{})
	assert.Equal(t, "andi@vena.pictures", userData["email"])
	assert.Equal(t, "Admin", userData["role"])
}

func TestAuthHandler_LoginWarmsWorkspace(t *testing.T) {
	f := newAuthFixture(t)
	user := newStoredUser(t, identity.RoleAdmin, true)
	f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	_, c := postJSON(t, LoginRequest{Email: user.Email, Password: "password123"})
	f.handler.Login(c)

	store, ok := f.stores.Peek(user.ID)
	require.True(t, ok)
	assert.Equal(t, syncstore.StateReady, store.State())
}

func TestAuthHandler_LoginInvalidPassword(t *testing.T) {
	f := newAuthFixture(t)
	user := newStoredUser(t, identity.RoleAdmin, true)
	f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	w, c := postJSON(t, LoginRequest{Email: user.Email, Password: "wrong-password"})
	f.handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
}

func TestAuthHandler_LoginPendingAccount(t *testing.T) {
	f := newAuthFixture(t)
	user := newStoredUser(t, identity.RoleMember, false)
	f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	w, c := postJSON(t, LoginRequest{Email: user.Email, Password: "password123"})
	f.handler.Login(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeAccountPending, resp.Error.Code)
}

func TestAuthHandler_LoginInvalidBody(t *testing.T) {
	f := newAuthFixture(t)

	w, c := postJSON(t, map[string]string{"email": "not-an-email"})
	f.handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register(t *testing.T) {
	f := newAuthFixture(t)
	f.userRepo.On("FindByEmail", mock.Anything, "budi@vena.pictures").Return(nil, shared.ErrNotFound)
	f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	w, c := postJSON(t, RegisterRequest{
		Email:       "budi@vena.pictures",
		Password:    "password123",
		FullName:    "Budi",
		Role:        "Member",
		Permissions: []string{"clients", "projects"},
	})
	f.handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	userData := data["user"].(map[string]interface{})
	assert.Equal(t, "budi@vena.pictures", userData["email"])
	assert.Equal(t, false, userData["isApproved"])
	f.userRepo.AssertExpectations(t)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	existing := newStoredUser(t, identity.RoleAdmin, true)
	f.userRepo.On("FindByEmail", mock.Anything, existing.Email).Return(existing, nil)

	w, c := postJSON(t, RegisterRequest{
		Email:    existing.Email,
		Password: "password123",
		FullName: "Andi",
		Role:     "Admin",
	})
	f.handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	f := newAuthFixture(t)
	user := newStoredUser(t, identity.RoleAdmin, true)

	pair, err := f.jwt.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	require.NoError(t, err)

	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	w, c := postJSON(t, RefreshTokenRequest{RefreshToken: pair.RefreshToken})
	f.handler.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	token := data["token"].(map[string]interface{})
	assert.NotEmpty(t, token["access_token"])
}

func TestAuthHandler_RefreshTokenInvalid(t *testing.T) {
	f := newAuthFixture(t)

	w, c := postJSON(t, RefreshTokenRequest{RefreshToken: "not-a-token"})
	f.handler.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	f := newAuthFixture(t)
	user := newStoredUser(t, identity.RoleAdmin, true)
	f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	// Login first so a workspace exists to drop
	_, loginCtx := postJSON(t, LoginRequest{Email: user.Email, Password: "password123"})
	f.handler.Login(loginCtx)
	_, ok := f.stores.Peek(user.ID)
	require.True(t, ok)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	c.Set(middleware.JWTClaimsKey, &auth.Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
	})

	f.handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	_, ok = f.stores.Peek(user.ID)
	assert.False(t, ok, "workspace should be dropped at logout")
}

func TestAuthHandler_LogoutWithoutClaims(t *testing.T) {
	f := newAuthFixture(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)

	f.handler.Logout(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	f := newAuthFixture(t)
	user := newStoredUser(t, identity.RoleAdmin, true)
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	c.Set(middleware.JWTUserIDKey, user.ID.String())

	f.handler.GetCurrentUser(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	userData := data["user"].(map[string]interface{})
	assert.Equal(t, user.Email, userData["email"])
}

func TestAuthHandler_ApproveUser(t *testing.T) {
	f := newAuthFixture(t)
	admin := newStoredUser(t, identity.RoleAdmin, true)
	member := newStoredUser(t, identity.RoleMember, false)
	member.ID = uuid.New()

	f.userRepo.On("FindByID", mock.Anything, admin.ID).Return(admin, nil)
	f.userRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)
	f.userRepo.On("Update", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/approve/"+member.ID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: member.ID.String()}}
	c.Set(middleware.JWTUserIDKey, admin.ID.String())

	f.handler.ApproveUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	f.userRepo.AssertCalled(t, "Update", mock.Anything, mock.AnythingOfType("*identity.User"))
}

func TestAuthHandler_ApproveUserForbiddenForMembers(t *testing.T) {
	f := newAuthFixture(t)
	member := newStoredUser(t, identity.RoleMember, true)
	target := uuid.New()

	f.userRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/approve/"+target.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: target.String()}}
	c.Set(middleware.JWTUserIDKey, member.ID.String())

	f.handler.ApproveUser(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_ApproveUserInvalidID(t *testing.T) {
	f := newAuthFixture(t)
	admin := newStoredUser(t, identity.RoleAdmin, true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/approve/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	c.Set(middleware.JWTUserIDKey, admin.ID.String())

	f.handler.ApproveUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
