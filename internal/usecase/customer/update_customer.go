package customer

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/customer"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type UpdateCustomer struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewUpdateCustomer(repo domain.Repository, logger *zap.Logger) *UpdateCustomer {
	return &UpdateCustomer{repo: repo, logger: logger}
}

func (uc *UpdateCustomer) Execute(
	ctx context.Context,
	id uint,
	in Input,
) (*models.Customer, error) {

	c, err := uc.repo.GetCustomer(ctx, id)
	if err != nil {
		if !httperr.IsNotFound(err) {
			uc.logger.Error("Failed to get customer", zap.Uint("customer_id", id), zap.Error(err))
		}
		return nil, err
	}

	in = in.normalized()
	if err := validate(ctx, uc.repo, in); err != nil {
		return nil, err
	}

	in.apply(c)

	if err := uc.repo.UpdateCustomer(ctx, c); err != nil {
		uc.logger.Error("Failed to update customer", zap.Uint("customer_id", id), zap.Error(err))
		return nil, err
	}

	return c, nil
}
