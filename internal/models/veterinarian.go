package models

import "time"

type Veterinarian struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FirstName string `gorm:"size:45;not null" json:"first_name"`
	LastName  string `gorm:"size:45;not null" json:"last_name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	License   string `gorm:"size:100;uniqueIndex;not null" json:"license"`
	WorkPhone string `gorm:"size:15" json:"work_phone"`

	// No puede pasar a false mientras tenga citas programadas.
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
