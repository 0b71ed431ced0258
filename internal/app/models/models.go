package models

import "strings"

// Role is the access-level tag assigned server-side at registration.
// The client trusts it as-is and only matches it against route allow-lists.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

// ParseRole normalizes a role string coming back from the backend.
// Unknown values map to the empty role so the guard denies them.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent
	case RoleTutor:
		return RoleTutor
	case RoleAdmin:
		return RoleAdmin
	default:
		return ""
	}
}

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTutor || r == RoleAdmin
}

// Session is the persisted record of the authenticated principal.
// It lives in browser-scoped persistent storage and nowhere else; a full
// page reload reconstructs everything from it.
type Session struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Token    string `json:"token"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// HasRole reports whether the session's role is in the allow-list.
// An empty allow-list means any authenticated session is permitted.
func (s *Session) HasRole(allowed ...Role) bool {
	if s == nil {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if s.Role == r {
			return true
		}
	}
	return false
}

func (s *Session) IsAdmin() bool { return s != nil && s.Role == RoleAdmin }
