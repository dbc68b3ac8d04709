package customer

import (
	"context"

	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type Repository interface {
	// -------- Category --------
	CategoryExists(
		ctx context.Context,
		categoryID uint,
	) (bool, error)

	// -------- Customer --------
	ListCustomers(
		ctx context.Context,
		filter ListFilter,
	) (*ListResult, error)

	CreateCustomer(
		ctx context.Context,
		c *models.Customer,
	) error

	GetCustomer(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	// GetCustomerWithContacts eager-loads the owned contacts.
	GetCustomerWithContacts(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	UpdateCustomer(
		ctx context.Context,
		c *models.Customer,
	) error

	// DeleteCustomer removes the customer and every contact it owns.
	DeleteCustomer(
		ctx context.Context,
		id uint,
	) error
}
