package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ouaf-asso/ouaf-api/internal/dto"
	"github.com/ouaf-asso/ouaf-api/internal/models"
	"github.com/ouaf-asso/ouaf-api/internal/repository"
)

// ChartService exposes the organisation chart and its backoffice CRUD.
type ChartService interface {
	List(ctx context.Context) ([]dto.ChartEntryResponse, error)
	Create(ctx context.Context, req dto.ChartEntryUpsertRequest) (dto.ChartEntryResponse, error)
	Update(ctx context.Context, id uint, req dto.ChartEntryUpsertRequest) (dto.ChartEntryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type chartService struct {
	repo      repository.ChartRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewChartService constructs an organisation chart service.
func NewChartService(repo repository.ChartRepository, validate *validator.Validate, logger zerolog.Logger) ChartService {
	return &chartService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "chart_service").Logger(),
	}
}

func (s *chartService) List(ctx context.Context) ([]dto.ChartEntryResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewChartEntryResponseSlice(entries), nil
}

func (s *chartService) Create(ctx context.Context, req dto.ChartEntryUpsertRequest) (dto.ChartEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ChartEntryResponse{}, err
	}

	entry := models.OrganisationChartEntry{
		FullName: req.FullName,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
		Position: req.Position,
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		return dto.ChartEntryResponse{}, err
	}
	return dto.NewChartEntryResponse(entry), nil
}

func (s *chartService) Update(ctx context.Context, id uint, req dto.ChartEntryUpsertRequest) (dto.ChartEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ChartEntryResponse{}, err
	}

	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ChartEntryResponse{}, err
	}

	entry.FullName = req.FullName
	entry.Role = req.Role
	entry.PhotoURL = req.PhotoURL
	entry.Position = req.Position

	if err := s.repo.Update(ctx, &entry); err != nil {
		return dto.ChartEntryResponse{}, err
	}
	return dto.NewChartEntryResponse(entry), nil
}

func (s *chartService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
