package models

// Role is the privilege tier of a caller.
type Role int

const (
	// RoleUser is an ordinary identified caller.
	RoleUser Role = iota
	// RoleStaff is a privileged caller allowed to modify and delete notes.
	RoleStaff
)

// String returns the lowercase role name used in logs.
func (r Role) String() string {
	switch r {
	case RoleStaff:
		return "staff"
	default:
		return "user"
	}
}

// Caller identifies who issued a request. A nil *Caller means the request is
// anonymous.
type Caller struct {
	Subject string
	Role    Role
}

// Elevated reports whether the caller holds staff privileges.
func (c *Caller) Elevated() bool {
	return c != nil && c.Role == RoleStaff
}
