package entity

// Role represents the access role assigned to a user account.
type Role string

const (
	// RoleAdmin can moderate users, vendors, and reviews.
	RoleAdmin Role = "admin"
	// RoleVendor owns exactly one vendor profile.
	RoleVendor Role = "vendor"
	// RoleUser is a regular customer account.
	RoleUser Role = "user"
)

// Role ids are fixed by the seeded master_roles table. They are resolved
// into Role values once at the authorization boundary; call sites compare
// roles, never raw ids.
const (
	RoleIDAdmin  int64 = 1
	RoleIDVendor int64 = 2
	RoleIDUser   int64 = 3
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleUser:
		return true
	default:
		return false
	}
}

// ID returns the fixed master_roles id for the role, or 0 for an unknown role.
func (r Role) ID() int64 {
	switch r {
	case RoleAdmin:
		return RoleIDAdmin
	case RoleVendor:
		return RoleIDVendor
	case RoleUser:
		return RoleIDUser
	default:
		return 0
	}
}

// RoleFromID maps a master_roles id back to a Role.
func RoleFromID(id int64) (Role, bool) {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin, true
	case RoleIDVendor:
		return RoleVendor, true
	case RoleIDUser:
		return RoleUser, true
	default:
		return "", false
	}
}
