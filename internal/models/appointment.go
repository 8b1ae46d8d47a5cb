package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `gorm:"index;not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet"`

	VeterinarianID uint         `gorm:"index;not null" json:"veterinarian_id"`
	Veterinarian   Veterinarian `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"veterinarian"`

	ScheduledAt time.Time `gorm:"index;not null" json:"scheduled_at"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Reason string `gorm:"size:250" json:"reason"`
	Notes  string `gorm:"size:250" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
