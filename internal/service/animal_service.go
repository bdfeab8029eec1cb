package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ouaf-asso/ouaf-api/internal/dto"
	"github.com/ouaf-asso/ouaf-api/internal/models"
	"github.com/ouaf-asso/ouaf-api/internal/repository"
)

// AnimalService exposes the public animal catalogue and its backoffice CRUD.
type AnimalService interface {
	List(ctx context.Context) ([]dto.AnimalSummary, error)
	Get(ctx context.Context, id uint) (dto.AnimalDetail, error)
	Create(ctx context.Context, req dto.AnimalUpsertRequest) (dto.AnimalDetail, error)
	Update(ctx context.Context, id uint, req dto.AnimalUpsertRequest) (dto.AnimalDetail, error)
	Delete(ctx context.Context, id uint) error
	AttachMedia(ctx context.Context, animalID uint, upload dto.UploadResponse, caption string) (dto.AnimalDetail, error)
}

type animalService struct {
	repo      repository.AnimalRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAnimalService constructs an animal service.
func NewAnimalService(repo repository.AnimalRepository, validate *validator.Validate, logger zerolog.Logger) AnimalService {
	return &animalService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "animal_service").Logger(),
	}
}

func (s *animalService) List(ctx context.Context) ([]dto.AnimalSummary, error) {
	animals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewAnimalSummarySlice(animals), nil
}

func (s *animalService) Get(ctx context.Context, id uint) (dto.AnimalDetail, error) {
	animal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.AnimalDetail{}, err
	}
	return dto.NewAnimalDetail(animal), nil
}

func (s *animalService) Create(ctx context.Context, req dto.AnimalUpsertRequest) (dto.AnimalDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AnimalDetail{}, err
	}

	animal := models.Animal{
		Name:         req.Name,
		Species:      req.Species,
		Birth:        req.Birth,
		Death:        req.Death,
		Presentation: req.Presentation,
	}
	if err := s.repo.Create(ctx, &animal); err != nil {
		return dto.AnimalDetail{}, err
	}

	s.logger.Info().Uint("animal_id", animal.ID).Str("name", animal.Name).Msg("animal created")
	return dto.NewAnimalDetail(animal), nil
}

func (s *animalService) Update(ctx context.Context, id uint, req dto.AnimalUpsertRequest) (dto.AnimalDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AnimalDetail{}, err
	}

	animal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.AnimalDetail{}, err
	}

	animal.Name = req.Name
	animal.Species = req.Species
	animal.Birth = req.Birth
	animal.Death = req.Death
	animal.Presentation = req.Presentation

	if err := s.repo.Update(ctx, &animal); err != nil {
		return dto.AnimalDetail{}, err
	}
	return dto.NewAnimalDetail(animal), nil
}

func (s *animalService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *animalService) AttachMedia(ctx context.Context, animalID uint, upload dto.UploadResponse, caption string) (dto.AnimalDetail, error) {
	if _, err := s.repo.GetByID(ctx, animalID); err != nil {
		return dto.AnimalDetail{}, err
	}

	media := models.AnimalMedia{
		AnimalID: animalID,
		URL:      upload.URL,
		MimeType: upload.MimeType,
		IsImage:  upload.MimeType == "image",
		Caption:  caption,
	}
	if err := s.repo.AddMedia(ctx, &media); err != nil {
		return dto.AnimalDetail{}, err
	}

	animal, err := s.repo.GetByID(ctx, animalID)
	if err != nil {
		return dto.AnimalDetail{}, err
	}
	return dto.NewAnimalDetail(animal), nil
}
