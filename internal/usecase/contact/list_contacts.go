package contact

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/contact"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type ListContacts struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewListContacts(repo domain.Repository, logger *zap.Logger) *ListContacts {
	return &ListContacts{repo: repo, logger: logger}
}

func (uc *ListContacts) Execute(
	ctx context.Context,
	customerID uint,
) ([]models.Contact, error) {

	if err := requireCustomer(ctx, uc.repo, customerID); err != nil {
		return nil, err
	}

	contacts, err := uc.repo.ListContacts(ctx, customerID)
	if err != nil {
		uc.logger.Error("Failed to list contacts", zap.Uint("customer_id", customerID), zap.Error(err))
		return nil, err
	}
	return contacts, nil
}

func requireCustomer(ctx context.Context, repo domain.Repository, customerID uint) error {
	exists, err := repo.CustomerExists(ctx, customerID)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrNotFound("customer")
	}
	return nil
}
