package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ouaf-asso/ouaf-api/internal/models"
)

// AnimalRepository manages animal persistence operations.
type AnimalRepository interface {
	List(ctx context.Context) ([]models.Animal, error)
	GetByID(ctx context.Context, id uint) (models.Animal, error)
	Create(ctx context.Context, animal *models.Animal) error
	Update(ctx context.Context, animal *models.Animal) error
	Delete(ctx context.Context, id uint) error
	AddMedia(ctx context.Context, media *models.AnimalMedia) error
}

type animalRepository struct {
	db *gorm.DB
}

// NewAnimalRepository constructs an animal repository backed by GORM.
func NewAnimalRepository(db *gorm.DB) AnimalRepository {
	return &animalRepository{db: db}
}

func (r *animalRepository) List(ctx context.Context) ([]models.Animal, error) {
	var animals []models.Animal
	err := r.db.WithContext(ctx).
		Preload("Media").
		Order("name ASC").
		Find(&animals).Error
	return animals, err
}

func (r *animalRepository) GetByID(ctx context.Context, id uint) (models.Animal, error) {
	var animal models.Animal
	err := r.db.WithContext(ctx).Preload("Media").First(&animal, id).Error
	return animal, err
}

func (r *animalRepository) Create(ctx context.Context, animal *models.Animal) error {
	return r.db.WithContext(ctx).Create(animal).Error
}

func (r *animalRepository) Update(ctx context.Context, animal *models.Animal) error {
	return r.db.WithContext(ctx).Save(animal).Error
}

func (r *animalRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Animal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *animalRepository) AddMedia(ctx context.Context, media *models.AnimalMedia) error {
	return r.db.WithContext(ctx).Create(media).Error
}
