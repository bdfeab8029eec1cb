package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/ouaf-asso/ouaf-api/internal/models"
)

// AnimalSummary is the public listing representation of an animal.
type AnimalSummary struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Species           string `json:"species"`
	PresentationImage string `json:"presentation_image,omitempty"`
}

// AnimalDetail extends the summary with the full profile and media set.
type AnimalDetail struct {
	AnimalSummary
	Birth        *time.Time           `json:"birth,omitempty"`
	Death        *time.Time           `json:"death,omitempty"`
	Presentation string               `json:"presentation"`
	Media        []models.AnimalMedia `json:"media"`
}

// NewAnimalSummary converts a model into its listing DTO.
func NewAnimalSummary(animal models.Animal) AnimalSummary {
	return AnimalSummary{
		ID:                animal.ID,
		Name:              animal.Name,
		Species:           animal.Species,
		PresentationImage: animal.PresentationImage(),
	}
}

// NewAnimalDetail converts a model into its detail DTO.
func NewAnimalDetail(animal models.Animal) AnimalDetail {
	media := animal.Media
	if media == nil {
		media = []models.AnimalMedia{}
	}
	return AnimalDetail{
		AnimalSummary: NewAnimalSummary(animal),
		Birth:         animal.Birth,
		Death:         animal.Death,
		Presentation:  animal.Presentation,
		Media:         media,
	}
}

// NewAnimalSummarySlice converts a slice of models into DTOs.
func NewAnimalSummarySlice(animals []models.Animal) []AnimalSummary {
	out := make([]AnimalSummary, 0, len(animals))
	for _, animal := range animals {
		out = append(out, NewAnimalSummary(animal))
	}
	return out
}

// AnimalUpsertRequest is the backoffice payload to create or update an animal.
type AnimalUpsertRequest struct {
	Name         string     `json:"name" validate:"required,max=100"`
	Species      string     `json:"species" validate:"omitempty,max=100"`
	Birth        *time.Time `json:"birth"`
	Death        *time.Time `json:"death"`
	Presentation string     `json:"presentation" validate:"omitempty,max=8000"`
}

// EventResponse is the public representation of an event.
type EventResponse struct {
	ID          uint      `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	Until       time.Time `json:"until"`
	Organizer   string    `json:"organizer"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}

// NewEventResponse converts an event model into a DTO.
func NewEventResponse(event models.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Summary:     event.Summary,
		Description: event.Description,
		Start:       event.Start,
		Until:       event.Until,
		Organizer:   event.Organizer,
		Address:     event.Address,
		Latitude:    event.Latitude,
		Longitude:   event.Longitude,
	}
}

// NewEventResponseSlice converts events into DTOs.
func NewEventResponseSlice(events []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, NewEventResponse(event))
	}
	return out
}

// EventUpsertRequest is the backoffice payload to create or update an event.
type EventUpsertRequest struct {
	Summary     string    `json:"summary" validate:"required,max=500"`
	Description string    `json:"description" validate:"omitempty,max=8000"`
	Start       time.Time `json:"start" validate:"required"`
	Until       time.Time `json:"until" validate:"required,gtefield=Start"`
	Organizer   string    `json:"organizer" validate:"omitempty,max=200"`
	Address     string    `json:"address" validate:"omitempty,max=1000"`
	Latitude    float64   `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   float64   `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// ActivityCategoryResponse lists a category with its activity count.
type ActivityCategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ActivityResponse is the public representation of an activity.
type ActivityResponse struct {
	ID          uint              `json:"id"`
	CategoryID  uint              `json:"category_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Schedule    datatypes.JSONMap `json:"schedule,omitempty"`
}

// NewActivityCategoryResponse converts a category model into a DTO.
func NewActivityCategoryResponse(category models.ActivityCategory) ActivityCategoryResponse {
	return ActivityCategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

// NewActivityCategoryResponseSlice converts categories into DTOs.
func NewActivityCategoryResponseSlice(categories []models.ActivityCategory) []ActivityCategoryResponse {
	out := make([]ActivityCategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, NewActivityCategoryResponse(category))
	}
	return out
}

// NewActivityResponse converts an activity model into a DTO.
func NewActivityResponse(activity models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          activity.ID,
		CategoryID:  activity.CategoryID,
		Title:       activity.Title,
		Description: activity.Description,
		Schedule:    activity.Schedule,
	}
}

// NewActivityResponseSlice converts activities into DTOs.
func NewActivityResponseSlice(activities []models.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		out = append(out, NewActivityResponse(activity))
	}
	return out
}

// ActivityUpsertRequest is the backoffice payload for activities.
type ActivityUpsertRequest struct {
	CategoryID  uint              `json:"category_id" validate:"required"`
	Title       string            `json:"title" validate:"required,max=255"`
	Description string            `json:"description" validate:"omitempty,max=8000"`
	Schedule    datatypes.JSONMap `json:"schedule"`
}

// ActivityCategoryUpsertRequest is the backoffice payload for categories.
type ActivityCategoryUpsertRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=4000"`
}

// ChartEntryResponse is the public representation of an organisation chart entry.
type ChartEntryResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url,omitempty"`
	Position int    `json:"position"`
}

// NewChartEntryResponse converts a chart entry model into a DTO.
func NewChartEntryResponse(entry models.OrganisationChartEntry) ChartEntryResponse {
	return ChartEntryResponse{
		ID:       entry.ID,
		FullName: entry.FullName,
		Role:     entry.Role,
		PhotoURL: entry.PhotoURL,
		Position: entry.Position,
	}
}

// NewChartEntryResponseSlice converts chart entries into DTOs.
func NewChartEntryResponseSlice(entries []models.OrganisationChartEntry) []ChartEntryResponse {
	out := make([]ChartEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, NewChartEntryResponse(entry))
	}
	return out
}

// ChartEntryUpsertRequest is the backoffice payload for chart entries.
type ChartEntryUpsertRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role" validate:"required,max=200"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url,max=512"`
	Position int    `json:"position" validate:"min=0"`
}

// UploadResponse reports the stored location of an uploaded media file.
type UploadResponse struct {
	URL       string `json:"url"`
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
	Checksum  string `json:"checksum"`
}
