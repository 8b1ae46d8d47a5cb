package models

import "time"

type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesRabbit Species = "rabbit"
	SpeciesBird   Species = "bird"
	SpeciesOther  Species = "other"
)

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

type Pet struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name      string     `gorm:"size:45;not null" json:"name"`
	Species   Species    `gorm:"size:10;not null" json:"species"`
	Sex       Sex        `gorm:"size:1;not null" json:"sex"`
	Breed     string     `gorm:"size:45" json:"breed"`
	BirthDate *time.Time `json:"birth_date"`
	Color     string     `gorm:"size:45" json:"color"`
	PhotoURL  string     `gorm:"size:255" json:"photo_url"`

	// Mascotas inactivas no reciben citas nuevas.
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
