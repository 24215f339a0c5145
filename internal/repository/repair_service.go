package repository

import (
	"context"

	"github.com/workshoplabs/repairtrack/internal/domain"
	"gorm.io/gorm"
)

// ServiceRepository handles database operations for repair services
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	GetAll(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)

	// GetByCustomer retrieves all services belonging to one customer
	GetByCustomer(ctx context.Context, customerID int64) ([]domain.Service, error)

	// Update applies only the supplied columns and returns the updated row.
	// Returns gorm.ErrRecordNotFound if the id is absent, before any write.
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*domain.Service, error)
}

// GormServiceRepository is the GORM implementation of ServiceRepository
type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *GormServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).Order("id ASC").Find(&services).Error
	return services, err
}

func (r *GormServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var service domain.Service
	err := r.db.WithContext(ctx).First(&service, id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *GormServiceRepository) GetByCustomer(ctx context.Context, customerID int64) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&services).Error
	return services, err
}

func (r *GormServiceRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*domain.Service, error) {
	var service domain.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&domain.Service{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
			return nil, err
		}
	}
	return &service, nil
}
