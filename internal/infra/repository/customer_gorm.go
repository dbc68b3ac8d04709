package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/customer"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB

	// caseSensitive selects plain LIKE over LOWER(...) LIKE LOWER(...)
	// for the search filter.
	caseSensitive bool
}

func NewCustomerGormRepository(db *gorm.DB, caseSensitiveSearch bool) *CustomerGormRepository {
	return &CustomerGormRepository{db: db, caseSensitive: caseSensitiveSearch}
}

// --------------------------------------------------
// Category
// --------------------------------------------------

func (r *CustomerGormRepository) CategoryExists(
	ctx context.Context,
	categoryID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerCategory{}).
		Where("id = ?", categoryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *CustomerGormRepository) ListCustomers(
	ctx context.Context,
	filter domain.ListFilter,
) (*domain.ListResult, error) {

	q := r.db.WithContext(ctx).Model(&models.Customer{})

	if filter.Search != nil {
		clause, pattern := r.searchClause(*filter.Search)
		q = q.Where(clause, pattern, pattern)
	}

	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	// reusable for both the count and the page query
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	customers := []models.Customer{}
	if err := q.
		Preload("Category").
		Order("created_at DESC").
		Order("id DESC").
		Limit(domain.PageSize).
		Offset(filter.Offset()).
		Find(&customers).Error; err != nil {
		return nil, err
	}

	counts, err := r.contactCounts(ctx, customers)
	if err != nil {
		return nil, err
	}

	return &domain.ListResult{
		Customers:     customers,
		ContactCounts: counts,
		Total:         total,
	}, nil
}

// searchClause matches name OR reference containing term literally.
// SQLite's LIKE ignores ASCII case, so case-sensitive search there uses GLOB.
func (r *CustomerGormRepository) searchClause(term string) (string, string) {
	switch {
	case !r.caseSensitive:
		return `(LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(reference) LIKE LOWER(?) ESCAPE '\')`,
			containsPattern(term)
	case r.db.Dialector.Name() == "sqlite":
		return `(name GLOB ? OR reference GLOB ?)`, globContainsPattern(term)
	default:
		return `(name LIKE ? ESCAPE '\' OR reference LIKE ? ESCAPE '\')`, containsPattern(term)
	}
}

func (r *CustomerGormRepository) contactCounts(
	ctx context.Context,
	customers []models.Customer,
) (map[uint]int64, error) {

	counts := make(map[uint]int64, len(customers))
	if len(customers) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}

	var rows []struct {
		CustomerID uint
		Total      int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Select("customer_id, COUNT(*) AS total").
		Where("customer_id IN ?", ids).
		Group("customer_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CustomerID] = row.Total
	}
	return counts, nil
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *CustomerGormRepository) CreateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {
	return translateWrite(
		r.db.WithContext(ctx).Omit("Category", "Contacts").Create(c).Error,
		"category_id",
	)
}

func (r *CustomerGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translateFind(err, "customer")
	}
	return &c, nil
}

func (r *CustomerGormRepository) GetCustomerWithContacts(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.db.WithContext(ctx).
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&c, id).Error; err != nil {
		return nil, translateFind(err, "customer")
	}

	if c.Contacts == nil {
		c.Contacts = []models.Contact{}
	}
	return &c, nil
}

func (r *CustomerGormRepository) UpdateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {
	return translateWrite(
		r.db.WithContext(ctx).Omit("Category", "Contacts").Save(c).Error,
		"category_id",
	)
}

func (r *CustomerGormRepository) DeleteCustomer(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Customer
		if err := tx.Select("id").First(&c, id).Error; err != nil {
			return translateFind(err, "customer")
		}

		if err := tx.
			Where("customer_id = ?", id).
			Delete(&models.Contact{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Customer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrNotFound("customer")
		}
		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*CustomerGormRepository)(nil)
