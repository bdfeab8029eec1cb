package models

import "time"

// OrganisationChartEntry describes one person displayed on the public
// organisation chart, ordered by Position.
type OrganisationChartEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"size:200;not null" json:"full_name"`
	Role      string    `gorm:"size:200;not null" json:"role"`
	PhotoURL  string    `gorm:"size:512" json:"photo_url"`
	Position  int       `gorm:"index;not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
