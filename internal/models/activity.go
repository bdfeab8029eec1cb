package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityCategory groups activities offered by the association.
type ActivityCategory struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Activities  []Activity `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Activity represents a single mediation activity, such as a school visit
// or a care-home session. Schedule holds free-form planning data (weekday,
// time slots, venue notes).
type Activity struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	CategoryID  uint              `gorm:"index;not null" json:"category_id"`
	Title       string            `gorm:"size:255;not null" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	Schedule    datatypes.JSONMap `json:"schedule,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
