// Package notification tells requesters and shelters about adoption requests.
package notification

import (
	"fmt"

	"refuge/internal/domain/entity"
)

// Topic prefixes. Each device subscribes to the topic of its signed-in principal.
const (
	userTopicPrefix   = "user-"
	refugeTopicPrefix = "refuge-"
)

type message struct {
	topic string
	title string
	body  string
}

// adoptionMessages returns the confirmation sent to the requester and the
// alert sent to the shelter.
func adoptionMessages(request *entity.AdoptionRequest) []message {
	return []message{
		{
			topic: userTopicPrefix + request.UserID,
			title: "Demande envoyée",
			body:  fmt.Sprintf("Votre demande d'adoption pour %s a été envoyée avec succès!", request.AnimalName),
		},
		{
			topic: refugeTopicPrefix + request.RefugeID,
			title: "Nouvelle demande d'adoption",
			body:  fmt.Sprintf("%s souhaite adopter %s", request.UserEmail, request.AnimalName),
		},
	}
}

func messageData(request *entity.AdoptionRequest) map[string]string {
	return map[string]string{
		"type":       "adoption_request",
		"request_id": request.ID,
		"animal_id":  request.AnimalID,
	}
}
