package contact

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/contact"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type CreateContact struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewCreateContact(repo domain.Repository, logger *zap.Logger) *CreateContact {
	return &CreateContact{repo: repo, logger: logger}
}

func (uc *CreateContact) Execute(
	ctx context.Context,
	customerID uint,
	in Input,
) (*models.Contact, error) {

	if err := requireCustomer(ctx, uc.repo, customerID); err != nil {
		return nil, err
	}

	in = in.normalized()
	if err := in.validate(); err != nil {
		return nil, err
	}

	ct := &models.Contact{CustomerID: customerID}
	in.apply(ct)

	if err := uc.repo.CreateContact(ctx, ct); err != nil {
		uc.logger.Error("Failed to create contact", zap.Uint("customer_id", customerID), zap.Error(err))
		return nil, err
	}

	return ct, nil
}
