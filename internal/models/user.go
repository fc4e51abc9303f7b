package models

// Role determines what a logged-in user is allowed to do.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents the locally persisted identity of the current session.
// A user is either fully present (username and role) or absent; a partial
// session is never stored.
type User struct {
	// Username is the display name chosen at login.
	Username string `json:"username"`
	// Role is either "admin" or "user".
	Role Role `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
