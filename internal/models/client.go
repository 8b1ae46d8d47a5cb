package models

import "time"

// Dueño de mascotas. Un cliente por usuario.
type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FirstName string `gorm:"size:45;not null" json:"first_name"`
	LastName  string `gorm:"size:45;not null" json:"last_name"`
	Address   string `gorm:"size:100" json:"address"`

	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
