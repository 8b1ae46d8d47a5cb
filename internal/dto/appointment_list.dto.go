package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	PetName     string    `json:"pet_name"`
	VetName     string    `json:"vet_name"`
	Reason      string    `json:"reason"`
}
