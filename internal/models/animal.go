package models

import "time"

// Animal represents one of the association's mediation animals.
type Animal struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"size:100;not null" json:"name"`
	Species      string        `gorm:"size:100" json:"species"`
	Birth        *time.Time    `json:"birth"`
	Death        *time.Time    `json:"death"`
	Presentation string        `gorm:"type:text" json:"presentation"`
	Media        []AnimalMedia `gorm:"constraint:OnDelete:CASCADE" json:"media,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// AnimalMedia captures a photo or video attached to an animal profile.
type AnimalMedia struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AnimalID  uint      `gorm:"index;not null" json:"animal_id"`
	URL       string    `gorm:"size:512;not null" json:"url"`
	MimeType  string    `gorm:"size:128;not null" json:"mime_type"`
	IsImage   bool      `gorm:"index" json:"is_image"`
	Caption   string    `gorm:"size:255" json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

// PresentationImage returns the first image attached to the animal, if any.
func (a Animal) PresentationImage() string {
	for _, media := range a.Media {
		if media.IsImage {
			return media.URL
		}
	}
	return ""
}
