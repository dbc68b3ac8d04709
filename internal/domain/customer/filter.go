package customer

import "github.com/BruksfildServices01/customer-crm/internal/models"

// PageSize is the fixed number of customers per listing page.
const PageSize = 5

// ListFilter narrows a customer listing. Search and CategoryID are
// conjunctive when both are set; a nil field is not applied.
type ListFilter struct {
	Search     *string
	CategoryID *uint
	Page       int
}

// CurrentPage is Page clamped to the first page.
func (f ListFilter) CurrentPage() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

func (f ListFilter) Offset() int {
	return (f.CurrentPage() - 1) * PageSize
}

type ListResult struct {
	Customers []models.Customer
	// ContactCounts is keyed by customer id; customers without contacts
	// are absent.
	ContactCounts map[uint]int64
	Total         int64
}
