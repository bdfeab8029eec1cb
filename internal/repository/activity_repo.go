package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ouaf-asso/ouaf-api/internal/models"
)

// ActivityRepository manages activity and category persistence operations.
type ActivityRepository interface {
	ListCategories(ctx context.Context) ([]models.ActivityCategory, error)
	GetCategory(ctx context.Context, id uint) (models.ActivityCategory, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Activity, error)
	CreateCategory(ctx context.Context, category *models.ActivityCategory) error
	UpdateCategory(ctx context.Context, category *models.ActivityCategory) error
	DeleteCategory(ctx context.Context, id uint) error
	CreateActivity(ctx context.Context, activity *models.Activity) error
	UpdateActivity(ctx context.Context, activity *models.Activity) error
	DeleteActivity(ctx context.Context, id uint) error
	GetActivity(ctx context.Context, id uint) (models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository constructs an activity repository backed by GORM.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ListCategories(ctx context.Context) ([]models.ActivityCategory, error) {
	var categories []models.ActivityCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *activityRepository) GetCategory(ctx context.Context, id uint) (models.ActivityCategory, error) {
	var category models.ActivityCategory
	err := r.db.WithContext(ctx).First(&category, id).Error
	return category, err
}

func (r *activityRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("title ASC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) CreateCategory(ctx context.Context, category *models.ActivityCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *activityRepository) UpdateCategory(ctx context.Context, category *models.ActivityCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *activityRepository) DeleteCategory(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ActivityCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *activityRepository) CreateActivity(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) DeleteActivity(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *activityRepository) GetActivity(ctx context.Context, id uint) (models.Activity, error) {
	var activity models.Activity
	err := r.db.WithContext(ctx).First(&activity, id).Error
	return activity, err
}
