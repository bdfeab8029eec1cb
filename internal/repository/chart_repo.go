package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ouaf-asso/ouaf-api/internal/models"
)

// ChartRepository manages organisation chart persistence operations.
type ChartRepository interface {
	List(ctx context.Context) ([]models.OrganisationChartEntry, error)
	GetByID(ctx context.Context, id uint) (models.OrganisationChartEntry, error)
	Create(ctx context.Context, entry *models.OrganisationChartEntry) error
	Update(ctx context.Context, entry *models.OrganisationChartEntry) error
	Delete(ctx context.Context, id uint) error
}

type chartRepository struct {
	db *gorm.DB
}

// NewChartRepository constructs an organisation chart repository backed by GORM.
func NewChartRepository(db *gorm.DB) ChartRepository {
	return &chartRepository{db: db}
}

func (r *chartRepository) List(ctx context.Context) ([]models.OrganisationChartEntry, error) {
	var entries []models.OrganisationChartEntry
	err := r.db.WithContext(ctx).Order("position ASC, full_name ASC").Find(&entries).Error
	return entries, err
}

func (r *chartRepository) GetByID(ctx context.Context, id uint) (models.OrganisationChartEntry, error) {
	var entry models.OrganisationChartEntry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	return entry, err
}

func (r *chartRepository) Create(ctx context.Context, entry *models.OrganisationChartEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *chartRepository) Update(ctx context.Context, entry *models.OrganisationChartEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *chartRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.OrganisationChartEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
