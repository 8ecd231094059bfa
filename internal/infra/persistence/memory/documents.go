package memory

import (
	"time"

	"refuge/internal/domain/entity"
	"refuge/internal/domain/repository"

	"github.com/paulmach/orb"
)

// animalDoc is the stored form of an animal. It holds no pointers so stored
// documents never alias values handed to callers.
type animalDoc struct {
	Name          string
	Type          string
	Breed         string
	Age           int
	Description   string
	Image         entity.EncodedImage
	RefugeID      string
	RefugeName    string
	RefugeAddress string
	RefugePhone   string
	HasLocation   bool
	Location      orb.Point
	CreatedAt     time.Time
	Available     bool
}

func (d animalDoc) field(name string) (any, bool) {
	switch name {
	case repository.AnimalFieldAvailable:
		return d.Available, true
	case repository.AnimalFieldRefugeID:
		return d.RefugeID, true
	default:
		return nil, false
	}
}

func toAnimalDoc(a *entity.Animal) animalDoc {
	doc := animalDoc{
		Name:          a.Name,
		Type:          a.Type,
		Breed:         a.Breed,
		Age:           a.Age,
		Description:   a.Description,
		Image:         a.Image,
		RefugeID:      a.RefugeID,
		RefugeName:    a.RefugeName,
		RefugeAddress: a.RefugeAddress,
		RefugePhone:   a.RefugePhone,
		CreatedAt:     a.CreatedAt,
		Available:     a.Available,
	}
	if a.Location != nil {
		doc.HasLocation, doc.Location = true, *a.Location
	}

	return doc
}

func toAnimalEntity(id string, d animalDoc) *entity.Animal {
	a := &entity.Animal{
		ID:            id,
		Name:          d.Name,
		Type:          d.Type,
		Breed:         d.Breed,
		Age:           d.Age,
		Description:   d.Description,
		Image:         d.Image,
		RefugeID:      d.RefugeID,
		RefugeName:    d.RefugeName,
		RefugeAddress: d.RefugeAddress,
		RefugePhone:   d.RefugePhone,
		CreatedAt:     d.CreatedAt,
		Available:     d.Available,
	}
	if d.HasLocation {
		loc := d.Location
		a.Location = &loc
	}

	return a
}

type requestDoc struct {
	AnimalID   string
	AnimalName string
	UserID     string
	UserEmail  string
	RefugeID   string
	Message    string
	Status     entity.RequestStatus
	CreatedAt  time.Time
}

func (d requestDoc) field(name string) (any, bool) {
	switch name {
	case repository.RequestFieldUserID:
		return d.UserID, true
	case repository.RequestFieldRefugeID:
		return d.RefugeID, true
	default:
		return nil, false
	}
}

func toRequestEntity(id string, d requestDoc) *entity.AdoptionRequest {
	return &entity.AdoptionRequest{
		ID:         id,
		AnimalID:   d.AnimalID,
		AnimalName: d.AnimalName,
		UserID:     d.UserID,
		UserEmail:  d.UserEmail,
		RefugeID:   d.RefugeID,
		Message:    d.Message,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}
}

type profileDoc struct {
	Email         string
	Role          entity.Role
	CreatedAt     time.Time
	DisplayName   string
	RefugeName    string
	RefugeAddress string
	RefugePhone   string
}

func (d profileDoc) field(string) (any, bool) {
	return nil, false
}

func toProfileEntity(uid string, d profileDoc) *entity.UserProfile {
	return &entity.UserProfile{
		UID:           uid,
		Email:         d.Email,
		Role:          d.Role,
		CreatedAt:     d.CreatedAt,
		DisplayName:   d.DisplayName,
		RefugeName:    d.RefugeName,
		RefugeAddress: d.RefugeAddress,
		RefugePhone:   d.RefugePhone,
	}
}
