package customer

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/customer"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type CreateCustomer struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewCreateCustomer(repo domain.Repository, logger *zap.Logger) *CreateCustomer {
	return &CreateCustomer{repo: repo, logger: logger}
}

func (uc *CreateCustomer) Execute(
	ctx context.Context,
	in Input,
) (*models.Customer, error) {

	in = in.normalized()
	if err := validate(ctx, uc.repo, in); err != nil {
		return nil, err
	}

	c := &models.Customer{}
	in.apply(c)

	if err := uc.repo.CreateCustomer(ctx, c); err != nil {
		uc.logger.Error("Failed to create customer", zap.Error(err))
		return nil, err
	}

	uc.logger.Debug("customer created", zap.Uint("customer_id", c.ID))
	return c, nil
}
