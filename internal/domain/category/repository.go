package category

import (
	"context"

	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]models.CustomerCategory, error)
}
