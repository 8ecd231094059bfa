// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strconv"
	"time"

	"github.com/paulmach/orb"
)

// Animal is one adoptable animal listed by a shelter.
type Animal struct {
	ID            string       `json:"id"`                      // Store-assigned identifier, empty before persistence.
	Name          string       `json:"name"`                    // The animal's name.
	Type          string       `json:"type"`                    // Species, e.g. "chien" or "chat".
	Breed         string       `json:"breed"`                   // Breed as entered by the shelter.
	Age           int          `json:"age"`                     // Age in whole years.
	Description   string       `json:"description"`             // Free-text description.
	Image         EncodedImage `json:"image"`                   // Inline data URI produced by the media codec.
	RefugeID      string       `json:"refugeId"`                // Owning shelter's subject identifier. Immutable.
	RefugeName    string       `json:"refugeName"`              // Copied from the shelter profile at creation.
	RefugeAddress string       `json:"refugeAddress,omitempty"` // Copied from the shelter profile at creation.
	RefugePhone   string       `json:"refugePhone,omitempty"`   // Copied from the shelter profile at creation.
	Location      *orb.Point   `json:"location,omitempty"`      // Optional [longitude, latitude] where the animal was listed.
	CreatedAt     time.Time    `json:"createdAt"`               // Server-assigned creation timestamp.
	Available     bool         `json:"available"`               // Whether the animal is still open for adoption.
}

// OwnedBy reports whether the animal belongs to the given shelter.
func (a *Animal) OwnedBy(refugeID string) bool {
	return a.RefugeID == refugeID
}

// AnimalUpdate is a partial update of an Animal. Nil fields are left untouched.
// The identifier, owning shelter and creation timestamp cannot be updated.
type AnimalUpdate struct {
	Name        *string       `json:"name,omitempty"`
	Type        *string       `json:"type,omitempty"`
	Breed       *string       `json:"breed,omitempty"`
	Age         *int          `json:"age,omitempty"`
	Description *string       `json:"description,omitempty"`
	Image       *EncodedImage `json:"image,omitempty"`
	Location    *orb.Point    `json:"location,omitempty"`
	Available   *bool         `json:"available,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u *AnimalUpdate) IsEmpty() bool {
	return u.Name == nil && u.Type == nil && u.Breed == nil && u.Age == nil &&
		u.Description == nil && u.Image == nil && u.Location == nil && u.Available == nil
}

// Apply copies the set fields of the update onto the animal.
func (u *AnimalUpdate) Apply(a *Animal) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Type != nil {
		a.Type = *u.Type
	}
	if u.Breed != nil {
		a.Breed = *u.Breed
	}
	if u.Age != nil {
		a.Age = *u.Age
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.Image != nil {
		a.Image = *u.Image
	}
	if u.Location != nil {
		loc := *u.Location
		a.Location = &loc
	}
	if u.Available != nil {
		a.Available = *u.Available
	}
}

// AgeLabel renders an age the way listings display it.
func AgeLabel(age int) string {
	switch {
	case age < 1:
		return "Moins d'1 an"
	case age == 1:
		return "1 an"
	default:
		return strconv.Itoa(age) + " ans"
	}
}
