package models

import "time"

// Consulta clínica: a lo más una por cita (índice único sobre AppointmentID).
type Consultation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Date        time.Time  `gorm:"not null" json:"date"`
	Diagnosis   string     `gorm:"size:250;not null" json:"diagnosis"`
	Treatment   string     `gorm:"size:250" json:"treatment"`
	Medications string     `gorm:"size:250" json:"medications"`
	FollowUp    *time.Time `json:"follow_up"`
	Cost        float64    `gorm:"type:numeric(10,2)" json:"cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
