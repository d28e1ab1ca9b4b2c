package models

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleViewer     Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleViewer:
		return true
	}
	return false
}

// Assignable reports whether the role may be given to a new account.
// super_admin accounts are provisioned out-of-band, never through forms.
func (r Role) Assignable() bool {
	return r == RoleAdmin || r == RoleViewer
}

func (r Role) CanManageUsers() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

func (r Role) CanExport() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// CanEditRole reports whether an actor with role r may change the role of a
// user that currently holds target. A super_admin's role is immutable, even
// to another super_admin.
func (r Role) CanEditRole(target Role) bool {
	return r.CanManageUsers() && target != RoleSuperAdmin
}

// CanDelete reports whether an actor with role r may delete an account that
// holds target. super_admin accounts are never deletable.
func (r Role) CanDelete(target Role) bool {
	return r.CanManageUsers() && target != RoleSuperAdmin
}

func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "مدير أساسي"
	case RoleAdmin:
		return "مدير"
	case RoleViewer:
		return "مشاهد"
	}
	return string(r)
}

// UserRecord is one entry of the credential file. The file is a JSON object
// keyed by username (stored case); lookups are case-insensitive.
type UserRecord struct {
	Password  string `json:"password"` // sha256 hex digest, never the cleartext
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	Avatar    string `json:"avatar,omitempty"`
}

// Profile is what authenticate hands back to the presentation layer: a copy
// of the public fields, hash excluded.
type Profile struct {
	Username string
	Name     string
	Role     Role
	Email    string
	Avatar   string
}

// UserSummary is one row of the admin user list.
type UserSummary struct {
	Username  string
	Name      string
	Role      Role
	Email     string
	CreatedAt string
	Avatar    string
}
