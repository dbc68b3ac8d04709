package customer

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/customer"
	"github.com/BruksfildServices01/customer-crm/internal/dto"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
)

type GetCustomer struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewGetCustomer(repo domain.Repository, logger *zap.Logger) *GetCustomer {
	return &GetCustomer{repo: repo, logger: logger}
}

// Execute returns the customer with all of its contacts.
func (uc *GetCustomer) Execute(
	ctx context.Context,
	id uint,
) (*dto.CustomerDetail, error) {

	c, err := uc.repo.GetCustomerWithContacts(ctx, id)
	if err != nil {
		if !httperr.IsNotFound(err) {
			uc.logger.Error("Failed to get customer", zap.Uint("customer_id", id), zap.Error(err))
		}
		return nil, err
	}

	return &dto.CustomerDetail{
		Customer: *c,
		Contacts: c.Contacts,
	}, nil
}
