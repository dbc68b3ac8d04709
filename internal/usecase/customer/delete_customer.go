package customer

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/customer"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
)

type DeleteCustomer struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewDeleteCustomer(repo domain.Repository, logger *zap.Logger) *DeleteCustomer {
	return &DeleteCustomer{repo: repo, logger: logger}
}

// Execute deletes the customer together with its contacts.
func (uc *DeleteCustomer) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteCustomer(ctx, id); err != nil {
		if !httperr.IsNotFound(err) {
			uc.logger.Error("Failed to delete customer", zap.Uint("customer_id", id), zap.Error(err))
		}
		return err
	}

	uc.logger.Debug("customer deleted", zap.Uint("customer_id", id))
	return nil
}
