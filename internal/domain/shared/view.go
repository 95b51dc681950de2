package shared

// View identifies one top-level screen of the application. Views are the
// vocabulary of the permission model and the navigation layer: a member's
// permission set is a list of views, and every route segment resolves to
// exactly one view.
type View string

const (
	ViewHomepage           View = "home"
	ViewDashboard          View = "dashboard"
	ViewLeads              View = "prospek"
	ViewBooking            View = "booking"
	ViewClients            View = "clients"
	ViewProjects           View = "projects"
	ViewTeam               View = "team"
	ViewFinance            View = "finance"
	ViewCalendar           View = "calendar"
	ViewSocialMediaPlanner View = "social-media-planner"
	ViewPackages           View = "packages"
	ViewAssets             View = "assets"
	ViewContracts          View = "contracts"
	ViewPromoCodes         View = "promo-codes"
	ViewSOP                View = "sop"
	ViewClientReports      View = "client-reports"
	ViewSettings           View = "settings"
)

// AllViews enumerates every view in the application. The navigation route
// table is checked against this list so a view added without a route fails
// the navigation tests.
var AllViews = []View{
	ViewHomepage,
	ViewDashboard,
	ViewLeads,
	ViewBooking,
	ViewClients,
	ViewProjects,
	ViewTeam,
	ViewFinance,
	ViewCalendar,
	ViewSocialMediaPlanner,
	ViewPackages,
	ViewAssets,
	ViewContracts,
	ViewPromoCodes,
	ViewSOP,
	ViewClientReports,
	ViewSettings,
}

// Valid reports whether v is a known view identifier
func (v View) Valid() bool {
	for _, known := range AllViews {
		if v == known {
			return true
		}
	}
	return false
}
