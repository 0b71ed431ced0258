package models

// NavItem is one entry in a shell's fixed navigation menu. Badge carries a
// live count derived from the stats queries; zero means no badge.
type NavItem struct {
	Name  string
	URL   string
	Icon  string
	Badge int
}

type Navigation struct {
	Items []NavItem
}

// LayoutData is everything a shell needs to render around a page.
type LayoutData struct {
	Title     string
	Session   *Session
	Nav       Navigation
	ActiveNav string
	Error     string
	Flash     string
}

var PublicNav = Navigation{
	Items: []NavItem{
		{Name: "Home", URL: "/"},
		{Name: "Tuitions", URL: "/tuitions"},
		{Name: "Login", URL: "/login"},
		{Name: "Register", URL: "/register"},
	},
}

var StudentNav = Navigation{
	Items: []NavItem{
		{Name: "Dashboard", URL: "/student/dashboard"},
		{Name: "Post Tuition", URL: "/student/tuitions/new"},
		{Name: "My Tuitions", URL: "/student/tuitions"},
		{Name: "Ongoing", URL: "/student/ongoing"},
		{Name: "Payments", URL: "/student/payments"},
	},
}

var TutorNav = Navigation{
	Items: []NavItem{
		{Name: "Dashboard", URL: "/tutor/dashboard"},
		{Name: "Browse Tuitions", URL: "/tutor/tuitions"},
		{Name: "My Applications", URL: "/tutor/applications"},
		{Name: "Ongoing", URL: "/tutor/ongoing"},
		{Name: "Profile", URL: "/tutor/profile"},
	},
}

var AdminNav = Navigation{
	Items: []NavItem{
		{Name: "Dashboard", URL: "/admin/dashboard"},
		{Name: "Users", URL: "/admin/users"},
		{Name: "Tuitions", URL: "/admin/tuitions"},
		{Name: "Transactions", URL: "/admin/transactions"},
		{Name: "Settings", URL: "/admin/settings"},
	},
}

// NavForRole returns the navigation menu for a session's role. The items are
// copied so per-request badge decoration never leaks into the shared menus.
func NavForRole(r Role) Navigation {
	var src Navigation
	switch r {
	case RoleStudent:
		src = StudentNav
	case RoleTutor:
		src = TutorNav
	case RoleAdmin:
		src = AdminNav
	default:
		src = PublicNav
	}
	items := make([]NavItem, len(src.Items))
	copy(items, src.Items)
	return Navigation{Items: items}
}
