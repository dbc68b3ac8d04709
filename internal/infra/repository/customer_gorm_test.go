package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/customer"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/models"
	"github.com/BruksfildServices01/customer-crm/internal/testutil"
)

func seedCustomer(t *testing.T, db *gorm.DB, name, ref string, categoryID uint, createdAt time.Time) models.Customer {
	t.Helper()

	c := models.Customer{
		Name:       name,
		Reference:  ref,
		CategoryID: categoryID,
		StartDate:  models.NewDate(2024, time.January, 15),
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Omit("Category", "Contacts").Create(&c).Error)
	return c
}

func seedContact(t *testing.T, db *gorm.DB, customerID uint, first string) models.Contact {
	t.Helper()

	ct := models.Contact{CustomerID: customerID, FirstName: first}
	require.NoError(t, db.Create(&ct).Error)
	return ct
}

func ptr[T any](v T) *T { return &v }

func names(customers []models.Customer) []string {
	out := make([]string, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.Name)
	}
	return out
}

func TestListCustomers(t *testing.T) {
	db := testutil.NewDB(t)
	cats := testutil.SeedCategories(t, db)
	repo := NewCustomerGormRepository(db, false)
	ctx := context.Background()

	base := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	acme := seedCustomer(t, db, "ACME Corp", "ACM-001", cats["Gold"], base)
	seedCustomer(t, db, "Globex", "GLX-42", cats["Silver"], base.Add(time.Minute))
	seedCustomer(t, db, "Initech", "ini-acme", cats["Gold"], base.Add(2*time.Minute))
	seedCustomer(t, db, "100% Widgets", "WID-1", cats["Bronze"], base.Add(3*time.Minute))

	seedContact(t, db, acme.ID, "Jane")
	seedContact(t, db, acme.ID, "John")

	t.Run("newest first with category and contact counts", func(t *testing.T) {
		res, err := repo.ListCustomers(ctx, domain.ListFilter{})
		require.NoError(t, err)

		assert.EqualValues(t, 4, res.Total)
		assert.Equal(t, []string{"100% Widgets", "Initech", "Globex", "ACME Corp"}, names(res.Customers))
		for _, c := range res.Customers {
			require.NotNil(t, c.Category)
			assert.Equal(t, c.CategoryID, c.Category.ID)
		}
		assert.EqualValues(t, 2, res.ContactCounts[acme.ID])
		assert.Len(t, res.ContactCounts, 1)
	})

	t.Run("search matches name or reference case-insensitively", func(t *testing.T) {
		res, err := repo.ListCustomers(ctx, domain.ListFilter{Search: ptr("acme")})
		require.NoError(t, err)

		assert.Equal(t, []string{"Initech", "ACME Corp"}, names(res.Customers))
		assert.EqualValues(t, 2, res.Total)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		res, err := repo.ListCustomers(ctx, domain.ListFilter{Search: ptr("%")})
		require.NoError(t, err)
		assert.Equal(t, []string{"100% Widgets"}, names(res.Customers))

		res, err = repo.ListCustomers(ctx, domain.ListFilter{Search: ptr("_")})
		require.NoError(t, err)
		assert.Empty(t, res.Customers)
	})

	t.Run("empty search matches everything", func(t *testing.T) {
		res, err := repo.ListCustomers(ctx, domain.ListFilter{Search: ptr("")})
		require.NoError(t, err)
		assert.EqualValues(t, 4, res.Total)
	})

	t.Run("category and search are conjunctive", func(t *testing.T) {
		res, err := repo.ListCustomers(ctx, domain.ListFilter{
			Search:     ptr("acme"),
			CategoryID: ptr(cats["Gold"]),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Initech", "ACME Corp"}, names(res.Customers))

		res, err = repo.ListCustomers(ctx, domain.ListFilter{
			Search:     ptr("globex"),
			CategoryID: ptr(cats["Gold"]),
		})
		require.NoError(t, err)
		assert.Empty(t, res.Customers)
		assert.Zero(t, res.Total)
	})

	t.Run("unknown category matches nothing", func(t *testing.T) {
		res, err := repo.ListCustomers(ctx, domain.ListFilter{CategoryID: ptr(uint(0))})
		require.NoError(t, err)
		assert.Empty(t, res.Customers)
	})
}

func TestListCustomersCaseSensitiveSearch(t *testing.T) {
	db := testutil.NewDB(t)
	cats := testutil.SeedCategories(t, db)
	repo := NewCustomerGormRepository(db, true)
	ctx := context.Background()

	base := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	seedCustomer(t, db, "ACME", "ACM-001", cats["Gold"], base)
	seedCustomer(t, db, "Star*Corp", "sc-1", cats["Gold"], base.Add(time.Minute))
	seedCustomer(t, db, "Q? Labs", "[beta]", cats["Gold"], base.Add(2*time.Minute))

	cases := []struct {
		search string
		want   []string
	}{
		{search: "acme", want: []string{}},
		{search: "ACME", want: []string{"ACME"}},
		{search: "acm-", want: []string{}},
		{search: "SC-1", want: []string{}},
		{search: "sc-1", want: []string{"Star*Corp"}},
		{search: "*", want: []string{"Star*Corp"}},
		{search: "?", want: []string{"Q? Labs"}},
		{search: "[beta]", want: []string{"Q? Labs"}},
		{search: "%", want: []string{}},
		{search: "", want: []string{"Q? Labs", "Star*Corp", "ACME"}},
	}

	for _, tc := range cases {
		res, err := repo.ListCustomers(ctx, domain.ListFilter{Search: ptr(tc.search)})
		require.NoError(t, err, tc.search)
		assert.Equal(t, tc.want, names(res.Customers), "search %q", tc.search)
		assert.EqualValues(t, len(tc.want), res.Total, "search %q", tc.search)
	}
}

func TestListCustomersPagination(t *testing.T) {
	db := testutil.NewDB(t)
	cats := testutil.SeedCategories(t, db)
	repo := NewCustomerGormRepository(db, false)
	ctx := context.Background()

	base := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 7; i++ {
		seedCustomer(t, db, fmt.Sprintf("Customer %d", i), fmt.Sprintf("REF-%d", i), cats["Gold"], base.Add(time.Duration(i)*time.Minute))
	}

	first, err := repo.ListCustomers(ctx, domain.ListFilter{Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 7, first.Total)
	assert.Equal(t, []string{"Customer 7", "Customer 6", "Customer 5", "Customer 4", "Customer 3"}, names(first.Customers))

	second, err := repo.ListCustomers(ctx, domain.ListFilter{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer 2", "Customer 1"}, names(second.Customers))

	beyond, err := repo.ListCustomers(ctx, domain.ListFilter{Page: 3})
	require.NoError(t, err)
	assert.Empty(t, beyond.Customers)
	assert.EqualValues(t, 7, beyond.Total)
}

func TestCustomerCRUD(t *testing.T) {
	db := testutil.NewDB(t)
	cats := testutil.SeedCategories(t, db)
	repo := NewCustomerGormRepository(db, false)
	ctx := context.Background()

	c := &models.Customer{
		Name:        "Acme",
		Reference:   "ACM-001",
		CategoryID:  cats["Gold"],
		StartDate:   models.NewDate(2024, time.January, 15),
		Description: "Anvils",
	}
	require.NoError(t, repo.CreateCustomer(ctx, c))
	require.NotZero(t, c.ID)

	got, err := repo.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "2024-01-15", got.StartDate.String())
	assert.Equal(t, "Anvils", got.Description)

	got.Name = "Acme Ltd"
	got.CategoryID = cats["Bronze"]
	require.NoError(t, repo.UpdateCustomer(ctx, got))

	again, err := repo.GetCustomerWithContacts(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", again.Name)
	assert.Equal(t, cats["Bronze"], again.CategoryID)
	assert.NotNil(t, again.Contacts)
	assert.Empty(t, again.Contacts)

	_, err = repo.GetCustomer(ctx, c.ID+100)
	assert.True(t, httperr.IsNotFound(err))
}

func TestCreateCustomerMissingCategory(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCustomerGormRepository(db, false)

	err := repo.CreateCustomer(context.Background(), &models.Customer{
		Name:       "Acme",
		Reference:  "ACM-001",
		CategoryID: 999,
		StartDate:  models.NewDate(2024, time.January, 15),
	})

	var ri httperr.ReferentialIntegrityError
	require.ErrorAs(t, err, &ri)
	assert.Equal(t, "category_id", ri.Field)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteCustomerRemovesContacts(t *testing.T) {
	db := testutil.NewDB(t)
	cats := testutil.SeedCategories(t, db)
	repo := NewCustomerGormRepository(db, false)
	ctx := context.Background()

	now := time.Now()
	doomed := seedCustomer(t, db, "Doomed", "D-1", cats["Gold"], now)
	kept := seedCustomer(t, db, "Kept", "K-1", cats["Gold"], now)
	seedContact(t, db, doomed.ID, "A")
	seedContact(t, db, doomed.ID, "B")
	survivor := seedContact(t, db, kept.ID, "C")

	require.NoError(t, repo.DeleteCustomer(ctx, doomed.ID))

	_, err := repo.GetCustomer(ctx, doomed.ID)
	assert.True(t, httperr.IsNotFound(err))

	var remaining []models.Contact
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, survivor.ID, remaining[0].ID)

	assert.True(t, httperr.IsNotFound(repo.DeleteCustomer(ctx, doomed.ID)))
}

func TestCategoryExists(t *testing.T) {
	db := testutil.NewDB(t)
	cats := testutil.SeedCategories(t, db)
	repo := NewCustomerGormRepository(db, false)

	ok, err := repo.CategoryExists(context.Background(), cats["Silver"])
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CategoryExists(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)
}
