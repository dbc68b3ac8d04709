package contact

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/contact"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
)

type DeleteContact struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewDeleteContact(repo domain.Repository, logger *zap.Logger) *DeleteContact {
	return &DeleteContact{repo: repo, logger: logger}
}

func (uc *DeleteContact) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteContact(ctx, id); err != nil {
		if !httperr.IsNotFound(err) {
			uc.logger.Error("Failed to delete contact", zap.Uint("contact_id", id), zap.Error(err))
		}
		return err
	}
	return nil
}
