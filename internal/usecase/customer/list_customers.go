package customer

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/customer"
	"github.com/BruksfildServices01/customer-crm/internal/dto"
)

type ListCustomersOutput struct {
	Items   []dto.CustomerListItem
	Total   int64
	Page    int
	PerPage int
}

type ListCustomers struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewListCustomers(repo domain.Repository, logger *zap.Logger) *ListCustomers {
	return &ListCustomers{repo: repo, logger: logger}
}

func (uc *ListCustomers) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) (*ListCustomersOutput, error) {

	res, err := uc.repo.ListCustomers(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list customers", zap.Error(err))
		return nil, err
	}

	items := make([]dto.CustomerListItem, 0, len(res.Customers))
	for _, c := range res.Customers {
		items = append(items, dto.CustomerListItem{
			Customer:      c,
			ContactsCount: res.ContactCounts[c.ID],
		})
	}

	return &ListCustomersOutput{
		Items:   items,
		Total:   res.Total,
		Page:    filter.CurrentPage(),
		PerPage: domain.PageSize,
	}, nil
}
