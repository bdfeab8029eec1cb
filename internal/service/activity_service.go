package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ouaf-asso/ouaf-api/internal/dto"
	"github.com/ouaf-asso/ouaf-api/internal/models"
	"github.com/ouaf-asso/ouaf-api/internal/repository"
)

// ActivityService exposes activity categories and their activities.
type ActivityService interface {
	Categories(ctx context.Context) ([]dto.ActivityCategoryResponse, error)
	ByCategory(ctx context.Context, categoryID uint) (dto.ActivityCategoryResponse, []dto.ActivityResponse, error)
	CreateCategory(ctx context.Context, req dto.ActivityCategoryUpsertRequest) (dto.ActivityCategoryResponse, error)
	UpdateCategory(ctx context.Context, id uint, req dto.ActivityCategoryUpsertRequest) (dto.ActivityCategoryResponse, error)
	DeleteCategory(ctx context.Context, id uint) error
	CreateActivity(ctx context.Context, req dto.ActivityUpsertRequest) (dto.ActivityResponse, error)
	UpdateActivity(ctx context.Context, id uint, req dto.ActivityUpsertRequest) (dto.ActivityResponse, error)
	DeleteActivity(ctx context.Context, id uint) error
}

type activityService struct {
	repo      repository.ActivityRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewActivityService constructs an activity service.
func NewActivityService(repo repository.ActivityRepository, validate *validator.Validate, logger zerolog.Logger) ActivityService {
	return &activityService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *activityService) Categories(ctx context.Context) ([]dto.ActivityCategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewActivityCategoryResponseSlice(categories), nil
}

func (s *activityService) ByCategory(ctx context.Context, categoryID uint) (dto.ActivityCategoryResponse, []dto.ActivityResponse, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return dto.ActivityCategoryResponse{}, nil, err
	}

	activities, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return dto.ActivityCategoryResponse{}, nil, err
	}

	return dto.NewActivityCategoryResponse(category), dto.NewActivityResponseSlice(activities), nil
}

func (s *activityService) CreateCategory(ctx context.Context, req dto.ActivityCategoryUpsertRequest) (dto.ActivityCategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ActivityCategoryResponse{}, err
	}

	category := models.ActivityCategory{Name: req.Name, Description: req.Description}
	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return dto.ActivityCategoryResponse{}, err
	}
	return dto.NewActivityCategoryResponse(category), nil
}

func (s *activityService) UpdateCategory(ctx context.Context, id uint, req dto.ActivityCategoryUpsertRequest) (dto.ActivityCategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ActivityCategoryResponse{}, err
	}

	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return dto.ActivityCategoryResponse{}, err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.repo.UpdateCategory(ctx, &category); err != nil {
		return dto.ActivityCategoryResponse{}, err
	}
	return dto.NewActivityCategoryResponse(category), nil
}

func (s *activityService) DeleteCategory(ctx context.Context, id uint) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *activityService) CreateActivity(ctx context.Context, req dto.ActivityUpsertRequest) (dto.ActivityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ActivityResponse{}, err
	}

	if _, err := s.repo.GetCategory(ctx, req.CategoryID); err != nil {
		return dto.ActivityResponse{}, err
	}

	activity := models.Activity{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Schedule:    req.Schedule,
	}
	if err := s.repo.CreateActivity(ctx, &activity); err != nil {
		return dto.ActivityResponse{}, err
	}
	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) UpdateActivity(ctx context.Context, id uint, req dto.ActivityUpsertRequest) (dto.ActivityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ActivityResponse{}, err
	}

	activity, err := s.repo.GetActivity(ctx, id)
	if err != nil {
		return dto.ActivityResponse{}, err
	}

	activity.CategoryID = req.CategoryID
	activity.Title = req.Title
	activity.Description = req.Description
	activity.Schedule = req.Schedule

	if err := s.repo.UpdateActivity(ctx, &activity); err != nil {
		return dto.ActivityResponse{}, err
	}
	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) DeleteActivity(ctx context.Context, id uint) error {
	return s.repo.DeleteActivity(ctx, id)
}
