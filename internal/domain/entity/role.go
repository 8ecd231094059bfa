package entity

// Role represents the type of account a principal registered with.
type Role string

const (
	// RoleUser indicates an individual looking to adopt.
	RoleUser Role = "user"
	// RoleRefuge indicates a shelter account that lists animals.
	RoleRefuge Role = "refuge"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleRefuge:
		return true
	default:
		return false
	}
}
