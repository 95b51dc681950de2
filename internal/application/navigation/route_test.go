package navigation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
)

func adminUser() *identity.User {
	return &identity.User{ID: uuid.New(), Role: identity.RoleAdmin, IsApproved: true}
}

func memberUser(views ...shared.View) *identity.User {
	return &identity.User{ID: uuid.New(), Role: identity.RoleMember, Permissions: views, IsApproved: true}
}

func TestResolve_EveryViewHasARoute(t *testing.T) {
	user := adminUser()
	for _, view := range shared.AllViews {
		res := Resolve("#/"+string(view), user, "")
		if view == shared.ViewHomepage {
			// The home route is a landing page for authenticated sessions
			assert.Equal(t, RouteDashboard, res.Redirect)
			continue
		}
		assert.Equal(t, view, res.View, "route #/%s", view)
		assert.Empty(t, res.Redirect, "route #/%s", view)
	}
}

func TestResolve_UnknownSegmentFallsBackToHome(t *testing.T) {
	res := Resolve("#/does-not-exist", nil, "")
	assert.Equal(t, shared.ViewHomepage, res.View)
}

func TestResolve_BareFragmentIsHome(t *testing.T) {
	for _, fragment := range []string{"", "#", "#/", "#/home"} {
		res := Resolve(fragment, nil, "")
		assert.Equal(t, shared.ViewHomepage, res.View, "fragment %q", fragment)
		assert.True(t, res.Public, "fragment %q", fragment)
		assert.Empty(t, res.Redirect, "fragment %q", fragment)
	}
}

func TestResolve_UnauthenticatedPrivateRouteRedirectsHome(t *testing.T) {
	for _, fragment := range []string{"#/dashboard", "#/finance", "#/clients", "#/settings"} {
		res := Resolve(fragment, nil, "")
		assert.Equal(t, RouteHome, res.Redirect, "fragment %q", fragment)
		assert.Equal(t, shared.ViewHomepage, res.View, "fragment %q", fragment)
	}
}

func TestResolve_UnauthenticatedPublicRoutesPass(t *testing.T) {
	fragments := []string{
		"#/public-booking",
		"#/public-packages",
		"#/feedback",
		"#/suggestion-form",
		"#/revision-form",
		"#/portal/abc123",
		"#/freelancer-portal/xyz789",
		"#/login",
		"#/signup",
	}
	for _, fragment := range fragments {
		res := Resolve(fragment, nil, "")
		assert.True(t, res.Public, "fragment %q", fragment)
		assert.Empty(t, res.Redirect, "fragment %q", fragment)
	}
}

func TestResolve_AuthenticatedLandingRedirectsToDashboard(t *testing.T) {
	user := memberUser()
	for _, fragment := range []string{"#/home", "#/login", "#/signup", "#"} {
		res := Resolve(fragment, user, "")
		assert.Equal(t, RouteDashboard, res.Redirect, "fragment %q", fragment)
		assert.Equal(t, shared.ViewDashboard, res.View, "fragment %q", fragment)
	}
}

func TestResolve_PortalAccessID(t *testing.T) {
	res := Resolve("#/portal/abc-123", nil, "")
	assert.Equal(t, "abc-123", res.AccessID)

	res = Resolve("#/freelancer-portal/f-456?tab=jobs", nil, "")
	assert.Equal(t, "f-456", res.AccessID)

	res = Resolve("#/clients/some-sub-path", adminUser(), "")
	assert.Empty(t, res.AccessID)
}

func TestResolve_QueryStringIsIgnored(t *testing.T) {
	res := Resolve("#/clients?filter=active", adminUser(), "")
	assert.Equal(t, shared.ViewClients, res.View)
}

func TestResolve_PublicThemePalette(t *testing.T) {
	res := Resolve("#/public-packages", nil, "#3b82f6")
	require.NotNil(t, res.Palette)
	assert.Equal(t, "#3b82f6", res.Palette.Accent)
	assert.NotEmpty(t, res.Palette.AccentHover)
	assert.NotEmpty(t, res.Palette.AccentHSL)

	// Feedback is public but not themed
	res = Resolve("#/feedback", nil, "#3b82f6")
	assert.Nil(t, res.Palette)

	// Authenticated routes never carry the palette
	res = Resolve("#/dashboard", adminUser(), "#3b82f6")
	assert.Nil(t, res.Palette)
}

func TestResolve_PaletteDefaultsBrandColor(t *testing.T) {
	res := Resolve("#/portal/abc", nil, "")
	require.NotNil(t, res.Palette)
	assert.Equal(t, identity.DefaultBrandColor, res.Palette.Accent)
}

func TestHasPermission(t *testing.T) {
	member := memberUser(shared.ViewClients, shared.ViewProjects)

	assert.False(t, HasPermission(nil, shared.ViewDashboard))
	assert.True(t, HasPermission(adminUser(), shared.ViewFinance))
	assert.True(t, HasPermission(member, shared.ViewDashboard))
	assert.True(t, HasPermission(member, shared.ViewClients))
	assert.False(t, HasPermission(member, shared.ViewFinance))
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, "#000000", DarkenColor("#000000", 10))
	assert.Equal(t, "#e6e6e6", DarkenColor("#ffffff", 10))
	assert.Equal(t, "not-a-color", DarkenColor("not-a-color", 10))
}

func TestHexToHSL(t *testing.T) {
	assert.Equal(t, "0 0% 100%", HexToHSL("#ffffff"))
	assert.Equal(t, "0 0% 0%", HexToHSL("#000000"))
	assert.Equal(t, "0 100% 50%", HexToHSL("#ff0000"))
	assert.Equal(t, "", HexToHSL("garbage"))
	// Short form expands
	assert.Equal(t, HexToHSL("#ff0000"), HexToHSL("#f00"))
}
