package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/category"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) ListCategories(
	ctx context.Context,
) ([]models.CustomerCategory, error) {

	categories := []models.CustomerCategory{}
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Compile-time check
var _ domain.Repository = (*CategoryGormRepository)(nil)
