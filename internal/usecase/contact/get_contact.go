package contact

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/contact"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type GetContact struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewGetContact(repo domain.Repository, logger *zap.Logger) *GetContact {
	return &GetContact{repo: repo, logger: logger}
}

func (uc *GetContact) Execute(ctx context.Context, id uint) (*models.Contact, error) {
	ct, err := uc.repo.GetContact(ctx, id)
	if err != nil {
		if !httperr.IsNotFound(err) {
			uc.logger.Error("Failed to get contact", zap.Uint("contact_id", id), zap.Error(err))
		}
		return nil, err
	}
	return ct, nil
}
