package repository

import (
	"context"

	"github.com/workshoplabs/repairtrack/internal/domain"
	"gorm.io/gorm"
)

// SparePartRepository handles database operations for spare parts
type SparePartRepository interface {
	Create(ctx context.Context, part *domain.SparePart) error
	GetAll(ctx context.Context) ([]domain.SparePart, error)
	GetByID(ctx context.Context, id int64) (*domain.SparePart, error)

	// GetOutOfStock retrieves parts whose stock_quantity is exactly zero
	GetOutOfStock(ctx context.Context) ([]domain.SparePart, error)

	// Update applies only the supplied columns and returns the updated row.
	// Returns gorm.ErrRecordNotFound if the id is absent, before any write.
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*domain.SparePart, error)
}

// GormSparePartRepository is the GORM implementation of SparePartRepository
type GormSparePartRepository struct {
	db *gorm.DB
}

func NewGormSparePartRepository(db *gorm.DB) *GormSparePartRepository {
	return &GormSparePartRepository{db: db}
}

func (r *GormSparePartRepository) Create(ctx context.Context, part *domain.SparePart) error {
	return r.db.WithContext(ctx).Create(part).Error
}

func (r *GormSparePartRepository) GetAll(ctx context.Context) ([]domain.SparePart, error) {
	var parts []domain.SparePart
	err := r.db.WithContext(ctx).Order("id ASC").Find(&parts).Error
	return parts, err
}

func (r *GormSparePartRepository) GetByID(ctx context.Context, id int64) (*domain.SparePart, error) {
	var part domain.SparePart
	err := r.db.WithContext(ctx).First(&part, id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *GormSparePartRepository) GetOutOfStock(ctx context.Context) ([]domain.SparePart, error) {
	var parts []domain.SparePart
	err := r.db.WithContext(ctx).
		Where("stock_quantity = ?", 0).
		Order("id ASC").
		Find(&parts).Error
	return parts, err
}

func (r *GormSparePartRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*domain.SparePart, error) {
	var part domain.SparePart
	if err := r.db.WithContext(ctx).First(&part, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&domain.SparePart{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := r.db.WithContext(ctx).First(&part, id).Error; err != nil {
			return nil, err
		}
	}
	return &part, nil
}
