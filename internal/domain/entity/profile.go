package entity

import "time"

// UserProfile holds the role and shelter metadata of an authenticated principal.
// Its document key equals the identity subject.
type UserProfile struct {
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	Role          Role      `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	DisplayName   string    `json:"displayName,omitempty"`   // Set for the user role.
	RefugeName    string    `json:"refugeName,omitempty"`    // Set for the refuge role.
	RefugeAddress string    `json:"refugeAddress,omitempty"` // Set for the refuge role.
	RefugePhone   string    `json:"refugePhone,omitempty"`   // Set for the refuge role.
}

// HasRole reports whether the profile is non-nil and carries the role.
func (p *UserProfile) HasRole(role Role) bool {
	return p != nil && p.Role == role
}
