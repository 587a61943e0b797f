package domain

import "time"

// Role distinguishes administrators from regular staff. There is no
// further hierarchy.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Profile is the per-user record tying an auth identity to an
// organization. The profile id doubles as the auth subject id.
type Profile struct {
	ID           string
	OrgID        string
	Role         Role
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the profile carries the admin role.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
