package entity

import "time"

// RequestStatus is the lifecycle state of an adoption request.
type RequestStatus string

const (
	// StatusPending is the only status this client ever writes.
	StatusPending RequestStatus = "pending"
	// StatusApproved is set by the shelter outside this client.
	StatusApproved RequestStatus = "approved"
	// StatusRejected is set by the shelter outside this client.
	StatusRejected RequestStatus = "rejected"
)

// IsValid checks if the status is one of the known values.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// AdoptionRequest is one user's interest in one animal.
type AdoptionRequest struct {
	ID         string        `json:"id"`         // Store-assigned identifier.
	AnimalID   string        `json:"animalId"`   // Referenced animal. Immutable.
	AnimalName string        `json:"animalName"` // Animal name at submission time.
	UserID     string        `json:"userId"`     // Requesting user. Immutable.
	UserEmail  string        `json:"userEmail"`  // Requesting user's email.
	RefugeID   string        `json:"refugeId"`   // Owning shelter copied from the animal at submission time.
	Message    string        `json:"message"`    // Free-text message to the shelter.
	Status     RequestStatus `json:"status"`     // Always pending when written by this client.
	CreatedAt  time.Time     `json:"createdAt"`  // Server-assigned creation timestamp.
}
