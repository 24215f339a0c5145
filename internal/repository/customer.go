package repository

import (
	"context"

	"github.com/workshoplabs/repairtrack/internal/domain"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository interface {
	// Create inserts a new customer and assigns its id and creation timestamp
	Create(ctx context.Context, customer *domain.Customer) error

	// GetAll retrieves all customers ordered by id ascending
	GetAll(ctx context.Context) ([]domain.Customer, error)

	// GetByID retrieves a customer by id
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)

	// Update applies only the supplied columns and returns the updated row.
	// Returns gorm.ErrRecordNotFound if the id is absent, before any write.
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*domain.Customer, error)
}

// GormCustomerRepository is the GORM implementation of CustomerRepository
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.WithContext(ctx).Order("id ASC").Find(&customers).Error
	return customers, err
}

func (r *GormCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&domain.Customer{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
			return nil, err
		}
	}
	return &customer, nil
}
