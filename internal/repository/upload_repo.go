package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ouaf-asso/ouaf-api/internal/models"
)

// UploadRepository persists upload metadata.
type UploadRepository interface {
	Create(ctx context.Context, record *models.UploadRecord) error
}

type uploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository constructs an upload repository backed by GORM.
func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(ctx context.Context, record *models.UploadRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}
