package category

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/category"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type ListCategories struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewListCategories(repo domain.Repository, logger *zap.Logger) *ListCategories {
	return &ListCategories{repo: repo, logger: logger}
}

func (uc *ListCategories) Execute(ctx context.Context) ([]models.CustomerCategory, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.logger.Error("Failed to list categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}
