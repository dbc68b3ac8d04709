package contact

import (
	"context"

	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type Repository interface {
	CustomerExists(
		ctx context.Context,
		customerID uint,
	) (bool, error)

	// ListContacts returns the customer's contacts, newest id first.
	ListContacts(
		ctx context.Context,
		customerID uint,
	) ([]models.Contact, error)

	CreateContact(
		ctx context.Context,
		ct *models.Contact,
	) error

	GetContact(
		ctx context.Context,
		id uint,
	) (*models.Contact, error)

	UpdateContact(
		ctx context.Context,
		ct *models.Contact,
	) error

	DeleteContact(
		ctx context.Context,
		id uint,
	) error
}
