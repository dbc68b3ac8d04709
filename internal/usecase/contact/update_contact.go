package contact

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/contact"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type UpdateContact struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewUpdateContact(repo domain.Repository, logger *zap.Logger) *UpdateContact {
	return &UpdateContact{repo: repo, logger: logger}
}

// Execute overwrites the contact's names. The owning customer never changes.
func (uc *UpdateContact) Execute(
	ctx context.Context,
	id uint,
	in Input,
) (*models.Contact, error) {

	ct, err := uc.repo.GetContact(ctx, id)
	if err != nil {
		if !httperr.IsNotFound(err) {
			uc.logger.Error("Failed to get contact", zap.Uint("contact_id", id), zap.Error(err))
		}
		return nil, err
	}

	in = in.normalized()
	if err := in.validate(); err != nil {
		return nil, err
	}

	in.apply(ct)

	if err := uc.repo.UpdateContact(ctx, ct); err != nil {
		uc.logger.Error("Failed to update contact", zap.Uint("contact_id", id), zap.Error(err))
		return nil, err
	}
	return ct, nil
}
