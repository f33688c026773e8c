package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/customer"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, entity *customer.Customer) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var entity customer.Customer
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("customer", id)
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &entity, nil
}

func (r *CustomerRepository) List(ctx context.Context, search string, offset, limit int) ([]customer.Customer, error) {
	q := r.db.WithContext(ctx).Model(&customer.Customer{}).Order("name asc")
	if search != "" {
		q = q.Where("name ILIKE ? OR phone LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	var customers []customer.Customer
	if err := q.Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, entity *customer.Customer) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&customer.Customer{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("customer", id)
	}
	return nil
}
