package entity

import "time"

// Principal is an authenticated identity as reported by the identity provider.
type Principal struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	IDToken   string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}
