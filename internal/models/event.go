package models

import "time"

// Event represents a public event organised by the association.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Summary     string    `gorm:"size:500;not null" json:"summary"`
	Description string    `gorm:"type:text" json:"description"`
	Start       time.Time `gorm:"index" json:"start"`
	Until       time.Time `gorm:"index" json:"until"`
	Organizer   string    `gorm:"size:200" json:"organizer"`
	Address     string    `gorm:"size:1000" json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
