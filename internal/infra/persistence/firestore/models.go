package firestore

import (
	"time"

	"refuge/internal/domain/entity"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/paulmach/orb"
)

// Collection names shared with the other clients of the project.
const (
	animalsCollection  = "animals"
	requestsCollection = "adoptionRequests"
	usersCollection    = "users"
)

// animalModel is the animal document layout. The image is kept under the
// historical imageUrl field and now always holds an inline data URI.
type animalModel struct {
	Name          string    `firestore:"name"`
	Type          string    `firestore:"type"`
	Breed         string    `firestore:"breed"`
	Age           int       `firestore:"age"`
	Description   string    `firestore:"description"`
	ImageURL      string    `firestore:"imageUrl"`
	RefugeID      string    `firestore:"refugeId"`
	RefugeName    string    `firestore:"refugeName"`
	RefugeAddress string    `firestore:"refugeAddress,omitempty"`
	RefugePhone   string    `firestore:"refugePhone,omitempty"`
	Latitude      *float64  `firestore:"latitude,omitempty"`
	Longitude     *float64  `firestore:"longitude,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
	Available     bool      `firestore:"available"`
}

func toAnimalModel(a *entity.Animal) *animalModel {
	m := &animalModel{
		Name:          a.Name,
		Type:          a.Type,
		Breed:         a.Breed,
		Age:           a.Age,
		Description:   a.Description,
		ImageURL:      string(a.Image),
		RefugeID:      a.RefugeID,
		RefugeName:    a.RefugeName,
		RefugeAddress: a.RefugeAddress,
		RefugePhone:   a.RefugePhone,
		Available:     a.Available,
	}
	if a.Location != nil {
		lon, lat := a.Location.Lon(), a.Location.Lat()
		m.Longitude, m.Latitude = &lon, &lat
	}

	return m
}

func (m *animalModel) toEntity(id string) *entity.Animal {
	a := &entity.Animal{
		ID:            id,
		Name:          m.Name,
		Type:          m.Type,
		Breed:         m.Breed,
		Age:           m.Age,
		Description:   m.Description,
		Image:         entity.EncodedImage(m.ImageURL),
		RefugeID:      m.RefugeID,
		RefugeName:    m.RefugeName,
		RefugeAddress: m.RefugeAddress,
		RefugePhone:   m.RefugePhone,
		CreatedAt:     m.CreatedAt,
		Available:     m.Available,
	}
	if m.Latitude != nil && m.Longitude != nil {
		a.Location = &orb.Point{*m.Longitude, *m.Latitude}
	}

	return a
}

// animalUpdates translates a partial update into field paths. Identity,
// ownership and creation time have no path and cannot be written.
func animalUpdates(u *entity.AnimalUpdate) []gcfirestore.Update {
	var updates []gcfirestore.Update
	add := func(path string, value any) {
		updates = append(updates, gcfirestore.Update{Path: path, Value: value})
	}

	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Type != nil {
		add("type", *u.Type)
	}
	if u.Breed != nil {
		add("breed", *u.Breed)
	}
	if u.Age != nil {
		add("age", *u.Age)
	}
	if u.Description != nil {
		add("description", *u.Description)
	}
	if u.Image != nil {
		add("imageUrl", string(*u.Image))
	}
	if u.Location != nil {
		add("latitude", u.Location.Lat())
		add("longitude", u.Location.Lon())
	}
	if u.Available != nil {
		add("available", *u.Available)
	}

	return updates
}

type requestModel struct {
	AnimalID   string    `firestore:"animalId"`
	AnimalName string    `firestore:"animalName"`
	UserID     string    `firestore:"userId"`
	UserEmail  string    `firestore:"userEmail"`
	RefugeID   string    `firestore:"refugeId"`
	Message    string    `firestore:"message"`
	Status     string    `firestore:"status"`
	CreatedAt  time.Time `firestore:"createdAt,serverTimestamp"`
}

// toRequestModel maps a new request. The status is always pending.
func toRequestModel(r *entity.AdoptionRequest) *requestModel {
	return &requestModel{
		AnimalID:   r.AnimalID,
		AnimalName: r.AnimalName,
		UserID:     r.UserID,
		UserEmail:  r.UserEmail,
		RefugeID:   r.RefugeID,
		Message:    r.Message,
		Status:     string(entity.StatusPending),
	}
}

func (m *requestModel) toEntity(id string) *entity.AdoptionRequest {
	return &entity.AdoptionRequest{
		ID:         id,
		AnimalID:   m.AnimalID,
		AnimalName: m.AnimalName,
		UserID:     m.UserID,
		UserEmail:  m.UserEmail,
		RefugeID:   m.RefugeID,
		Message:    m.Message,
		Status:     entity.RequestStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

type profileModel struct {
	UID           string    `firestore:"uid"`
	Email         string    `firestore:"email"`
	Role          string    `firestore:"role"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
	DisplayName   string    `firestore:"displayName,omitempty"`
	RefugeName    string    `firestore:"refugeName,omitempty"`
	RefugeAddress string    `firestore:"refugeAddress,omitempty"`
	RefugePhone   string    `firestore:"refugePhone,omitempty"`
}

func toProfileModel(p *entity.UserProfile) *profileModel {
	return &profileModel{
		UID:           p.UID,
		Email:         p.Email,
		Role:          p.Role.String(),
		CreatedAt:     p.CreatedAt,
		DisplayName:   p.DisplayName,
		RefugeName:    p.RefugeName,
		RefugeAddress: p.RefugeAddress,
		RefugePhone:   p.RefugePhone,
	}
}

func (m *profileModel) toEntity(id string) *entity.UserProfile {
	return &entity.UserProfile{
		UID:           id,
		Email:         m.Email,
		Role:          entity.Role(m.Role),
		CreatedAt:     m.CreatedAt,
		DisplayName:   m.DisplayName,
		RefugeName:    m.RefugeName,
		RefugeAddress: m.RefugeAddress,
		RefugePhone:   m.RefugePhone,
	}
}
