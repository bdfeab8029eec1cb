package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ouaf-asso/ouaf-api/internal/dto"
	"github.com/ouaf-asso/ouaf-api/internal/models"
	"github.com/ouaf-asso/ouaf-api/internal/repository"
)

// EventService exposes the public event agenda and its backoffice CRUD.
type EventService interface {
	Upcoming(ctx context.Context) ([]dto.EventResponse, error)
	Create(ctx context.Context, req dto.EventUpsertRequest) (dto.EventResponse, error)
	Update(ctx context.Context, id uint, req dto.EventUpsertRequest) (dto.EventResponse, error)
	Delete(ctx context.Context, id uint) error
}

type eventService struct {
	repo      repository.EventRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewEventService constructs an event service.
func NewEventService(repo repository.EventRepository, validate *validator.Validate, logger zerolog.Logger) EventService {
	return &eventService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "event_service").Logger(),
		now:       time.Now,
	}
}

func (s *eventService) Upcoming(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.repo.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return dto.NewEventResponseSlice(events), nil
}

func (s *eventService) Create(ctx context.Context, req dto.EventUpsertRequest) (dto.EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.EventResponse{}, err
	}

	event := models.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       req.Start,
		Until:       req.Until,
		Organizer:   req.Organizer,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if err := s.repo.Create(ctx, &event); err != nil {
		return dto.EventResponse{}, err
	}

	s.logger.Info().Uint("event_id", event.ID).Msg("event created")
	return dto.NewEventResponse(event), nil
}

func (s *eventService) Update(ctx context.Context, id uint, req dto.EventUpsertRequest) (dto.EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.EventResponse{}, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.EventResponse{}, err
	}

	event.Summary = req.Summary
	event.Description = req.Description
	event.Start = req.Start
	event.Until = req.Until
	event.Organizer = req.Organizer
	event.Address = req.Address
	event.Latitude = req.Latitude
	event.Longitude = req.Longitude

	if err := s.repo.Update(ctx, &event); err != nil {
		return dto.EventResponse{}, err
	}
	return dto.NewEventResponse(event), nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
