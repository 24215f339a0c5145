package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workshoplabs/repairtrack/internal/domain"
)

func TestConsumeDecrementsStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUsageRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	service := seedService(t, db, customer.ID)
	part := seedPart(t, db, 10)

	usage, err := repo.Consume(ctx, service.ID, part.ID, 3)
	require.NoError(t, err)
	require.NotZero(t, usage.ID)
	require.Equal(t, service.ID, usage.ServiceID)
	require.Equal(t, part.ID, usage.SparePartID)
	require.Equal(t, 3, usage.QuantityUsed)
	require.False(t, usage.CreatedAt.IsZero())

	var reloaded domain.SparePart
	require.NoError(t, db.First(&reloaded, part.ID).Error)
	require.Equal(t, 7, reloaded.StockQuantity)

	usages, err := repo.GetByService(ctx, service.ID)
	require.NoError(t, err)
	require.Len(t, usages, 1)
}

func TestConsumeInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUsageRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	service := seedService(t, db, customer.ID)
	part := seedPart(t, db, 10)

	_, err := repo.Consume(ctx, service.ID, part.ID, 20)
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 10, insufficient.Available)
	require.Equal(t, 20, insufficient.Requested)
	require.Contains(t, err.Error(), "insufficient stock")

	// no partial effects: stock untouched, no usage row
	var reloaded domain.SparePart
	require.NoError(t, db.First(&reloaded, part.ID).Error)
	require.Equal(t, 10, reloaded.StockQuantity)

	var count int64
	require.NoError(t, db.Model(&domain.ServiceSparePart{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestConsumeSequential(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUsageRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	service := seedService(t, db, customer.ID)
	part := seedPart(t, db, 10)

	_, err := repo.Consume(ctx, service.ID, part.ID, 6)
	require.NoError(t, err)

	// second request asks for more than the remaining 4
	_, err = repo.Consume(ctx, service.ID, part.ID, 5)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 4, insufficient.Available)
	require.Equal(t, 5, insufficient.Requested)

	var reloaded domain.SparePart
	require.NoError(t, db.First(&reloaded, part.ID).Error)
	require.Equal(t, 4, reloaded.StockQuantity)

	var count int64
	require.NoError(t, db.Model(&domain.ServiceSparePart{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestConsumeServiceNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUsageRepository(db)
	ctx := context.Background()

	part := seedPart(t, db, 10)

	_, err := repo.Consume(ctx, 999999, part.ID, 1)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "service", notFound.Kind)
	require.EqualValues(t, 999999, notFound.ID)
	require.EqualError(t, err, "service with id 999999 not found")

	var reloaded domain.SparePart
	require.NoError(t, db.First(&reloaded, part.ID).Error)
	require.Equal(t, 10, reloaded.StockQuantity)
}

func TestConsumeSparePartNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUsageRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	service := seedService(t, db, customer.ID)

	_, err := repo.Consume(ctx, service.ID, 424242, 1)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "spare part", notFound.Kind)
	require.EqualError(t, err, "spare part with id 424242 not found")

	var count int64
	require.NoError(t, db.Model(&domain.ServiceSparePart{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestConsumeExactStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUsageRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	service := seedService(t, db, customer.ID)
	part := seedPart(t, db, 5)

	_, err := repo.Consume(ctx, service.ID, part.ID, 5)
	require.NoError(t, err)

	var reloaded domain.SparePart
	require.NoError(t, db.First(&reloaded, part.ID).Error)
	require.Equal(t, 0, reloaded.StockQuantity)
}
