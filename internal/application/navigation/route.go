// Package navigation resolves URL fragment routes to views and enforces the
// authentication redirect policy and the per-view permission model.
package navigation

import (
	"strings"

	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
)

const (
	// RouteHome and RouteDashboard are the two redirect targets of the policy
	RouteHome      = "#/home"
	RouteDashboard = "#/dashboard"
)

// publicPrefixes lists the route prefixes reachable without authentication
var publicPrefixes = []string{
	"#/public",
	"#/feedback",
	"#/suggestion-form",
	"#/revision-form",
	"#/portal",
	"#/freelancer-portal",
	"#/login",
	"#/signup",
}

// themedPrefixes lists the routes rendered with the public document theme
// and the injected brand palette
var themedPrefixes = []string{
	"#/public",
	"#/portal",
	"#/freelancer-portal",
}

// Resolution is the outcome of resolving one fragment route
type Resolution struct {
	// View is the resolved view identifier
	View shared.View
	// Redirect, when non-empty, is the fragment the caller must navigate to
	// instead of rendering View
	Redirect string
	// Public reports whether the route is reachable without authentication
	Public bool
	// AccessID carries the trailing token of portal routes, empty otherwise
	AccessID string
	// Palette holds the derived brand palette for publicly themed routes
	Palette *Palette
}

// Normalize canonicalizes a fragment route: an empty or bare fragment
// becomes the home route.
func Normalize(fragment string) string {
	if fragment == "" || fragment == "#" || fragment == "#/" {
		return RouteHome
	}
	return fragment
}

// IsPublic reports whether the route is reachable without authentication
func IsPublic(fragment string) bool {
	fragment = Normalize(fragment)
	if fragment == RouteHome {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(fragment, prefix) {
			return true
		}
	}
	return false
}

// isLanding reports whether the route is a landing page an authenticated
// session is redirected away from
func isLanding(fragment string) bool {
	fragment = Normalize(fragment)
	return fragment == RouteHome ||
		strings.HasPrefix(fragment, "#/login") ||
		strings.HasPrefix(fragment, "#/signup")
}

// isThemed reports whether the route renders with the public theme
func isThemed(fragment string) bool {
	for _, prefix := range themedPrefixes {
		if strings.HasPrefix(Normalize(fragment), prefix) {
			return true
		}
	}
	return false
}

// segments splits a fragment into its path parts, dropping the query
func segments(fragment string) []string {
	path := strings.TrimPrefix(Normalize(fragment), "#")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// viewFor maps the leading path segment to a view. Unknown segments fall
// back to the home view.
func viewFor(fragment string) shared.View {
	parts := segments(fragment)
	if len(parts) == 0 {
		return shared.ViewHomepage
	}
	candidate := shared.View(strings.ToLower(parts[0]))
	if candidate.Valid() {
		return candidate
	}
	return shared.ViewHomepage
}

// accessID extracts the trailing access token of portal routes
func accessID(fragment string) string {
	parts := segments(fragment)
	if len(parts) < 2 {
		return ""
	}
	switch parts[0] {
	case "portal", "freelancer-portal":
		return parts[1]
	}
	return ""
}

// Resolve applies the routing policy for one fragment. brandColor feeds the
// public theme palette; when empty the default brand color is used.
func Resolve(fragment string, user *identity.User, brandColor string) Resolution {
	fragment = Normalize(fragment)

	res := Resolution{
		View:     viewFor(fragment),
		Public:   IsPublic(fragment),
		AccessID: accessID(fragment),
	}

	if user == nil {
		if !res.Public {
			res.Redirect = RouteHome
			res.View = shared.ViewHomepage
			res.Public = true
			return res
		}
	} else if isLanding(fragment) {
		res.Redirect = RouteDashboard
		res.View = shared.ViewDashboard
		res.Public = false
		return res
	}

	if isThemed(fragment) {
		if brandColor == "" {
			brandColor = identity.DefaultBrandColor
		}
		p := PaletteFor(brandColor)
		res.Palette = &p
	}
	return res
}
