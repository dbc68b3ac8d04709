package dto

import "github.com/BruksfildServices01/customer-crm/internal/models"

// CustomerListItem is one row of the customer listing: the customer, its
// category and how many contacts it owns.
type CustomerListItem struct {
	models.Customer
	ContactsCount int64 `json:"contacts_count"`
}

type CustomerDetail struct {
	models.Customer
	Contacts []models.Contact `json:"contacts"`
}
