package repository

import (
	"context"
	"errors"

	"github.com/workshoplabs/repairtrack/internal/domain"
	"gorm.io/gorm"
)

// UsageRepository handles spare part consumption records
type UsageRepository interface {
	// Consume records a spare part usage for a service and decrements the
	// part's stock inside a single transaction. The insert and the decrement
	// are all-or-nothing: any failure rolls back both. Returns
	// *domain.NotFoundError when the service or part is absent and
	// *domain.InsufficientStockError when the stock cannot cover the request.
	Consume(ctx context.Context, serviceID, sparePartID int64, quantityUsed int) (*domain.ServiceSparePart, error)

	// GetByService retrieves all usage records for one service
	GetByService(ctx context.Context, serviceID int64) ([]domain.ServiceSparePart, error)
}

// GormUsageRepository is the GORM implementation of UsageRepository
type GormUsageRepository struct {
	db *gorm.DB
}

func NewGormUsageRepository(db *gorm.DB) *GormUsageRepository {
	return &GormUsageRepository{db: db}
}

func (r *GormUsageRepository) Consume(ctx context.Context, serviceID, sparePartID int64, quantityUsed int) (*domain.ServiceSparePart, error) {
	var usage *domain.ServiceSparePart
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var service domain.Service
		if err := tx.First(&service, serviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFound("service", serviceID)
			}
			return err
		}

		var part domain.SparePart
		if err := tx.First(&part, sparePartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFound("spare part", sparePartID)
			}
			return err
		}

		if part.StockQuantity < quantityUsed {
			return &domain.InsufficientStockError{
				Available: part.StockQuantity,
				Requested: quantityUsed,
			}
		}

		record := &domain.ServiceSparePart{
			ServiceID:    serviceID,
			SparePartID:  sparePartID,
			QuantityUsed: quantityUsed,
		}
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		// Relative decrement executed by the storage engine, guarded so a
		// concurrent consumer that drained the stock since the check above
		// cannot push the quantity below zero.
		res := tx.Model(&domain.SparePart{}).
			Where("id = ? AND stock_quantity >= ?", sparePartID, quantityUsed).
			Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantityUsed))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &domain.InsufficientStockError{
				Available: part.StockQuantity,
				Requested: quantityUsed,
			}
		}

		usage = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return usage, nil
}

func (r *GormUsageRepository) GetByService(ctx context.Context, serviceID int64) ([]domain.ServiceSparePart, error) {
	var usages []domain.ServiceSparePart
	err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("id ASC").
		Find(&usages).Error
	return usages, err
}
