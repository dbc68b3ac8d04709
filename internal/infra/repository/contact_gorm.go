package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/contact"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/models"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) CustomerExists(
	ctx context.Context,
	customerID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ContactGormRepository) ListContacts(
	ctx context.Context,
	customerID uint,
) ([]models.Contact, error) {

	contacts := []models.Contact{}
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactGormRepository) CreateContact(
	ctx context.Context,
	ct *models.Contact,
) error {
	return translateWrite(
		r.db.WithContext(ctx).Create(ct).Error,
		"customer_id",
	)
}

func (r *ContactGormRepository) GetContact(
	ctx context.Context,
	id uint,
) (*models.Contact, error) {

	var ct models.Contact
	if err := r.db.WithContext(ctx).First(&ct, id).Error; err != nil {
		return nil, translateFind(err, "contact")
	}
	return &ct, nil
}

func (r *ContactGormRepository) UpdateContact(
	ctx context.Context,
	ct *models.Contact,
) error {
	return translateWrite(
		r.db.WithContext(ctx).Save(ct).Error,
		"customer_id",
	)
}

func (r *ContactGormRepository) DeleteContact(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Contact{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("contact")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ContactGormRepository)(nil)
