package workshop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/workshoplabs/repairtrack/internal/domain"
	"github.com/workshoplabs/repairtrack/pkg/common"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *WorkshopService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return NewWorkshopService(db)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func createTestCustomer(t *testing.T, svc *WorkshopService) *domain.Customer {
	t.Helper()
	customer, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
		Name:  "John Doe",
		Email: "john@x.com",
		Phone: "555",
	})
	require.NoError(t, err)
	return customer
}

func createTestService(t *testing.T, svc *WorkshopService, customerID int64) *domain.Service {
	t.Helper()
	service, err := svc.CreateService(context.Background(), CreateServiceInput{
		CustomerID:         customerID,
		StartDate:          time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ProblemDescription: "screen flickers",
		ServiceCost:        0,
	})
	require.NoError(t, err)
	return service
}

func TestCreateCustomer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	customer, err := svc.CreateCustomer(ctx, CreateCustomerInput{
		Name:    "Jane Roe",
		Email:   "jane@x.com",
		Phone:   "556",
		Address: strPtr("42 Elm St"),
	})
	require.NoError(t, err)
	require.NotZero(t, customer.ID)
	require.False(t, customer.CreatedAt.IsZero())

	customers, err := svc.GetCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "Jane Roe", customers[0].Name)
	require.NotNil(t, customers[0].Address)
}

func TestUpdateCustomerPartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	customer := createTestCustomer(t, svc)

	// supplied fields change, omitted fields keep their value
	updated, err := svc.UpdateCustomer(ctx, UpdateCustomerInput{
		ID:      customer.ID,
		Phone:   strPtr("777"),
		Address: common.NewOptional("9 Oak Ave"),
	})
	require.NoError(t, err)
	require.Equal(t, "777", updated.Phone)
	require.Equal(t, "John Doe", updated.Name)
	require.NotNil(t, updated.Address)
	require.Equal(t, "9 Oak Ave", *updated.Address)

	// explicit null clears the nullable field
	updated, err = svc.UpdateCustomer(ctx, UpdateCustomerInput{
		ID:      customer.ID,
		Address: common.NullOptional[string](),
	})
	require.NoError(t, err)
	require.Nil(t, updated.Address)
	require.Equal(t, "777", updated.Phone)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateCustomer(context.Background(), UpdateCustomerInput{
		ID:   99999,
		Name: strPtr("nobody"),
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.EqualError(t, err, "customer with id 99999 not found")
}

func TestCreateServiceForcesDefaults(t *testing.T) {
	svc := newTestService(t)
	customer := createTestCustomer(t, svc)

	service, err := svc.CreateService(context.Background(), CreateServiceInput{
		CustomerID:         customer.ID,
		StartDate:          time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ProblemDescription: "won't turn on",
		ServiceCost:        49.999,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ServiceStatusInProgress, service.Status)
	require.Nil(t, service.CompletionDate)
	require.Nil(t, service.RepairDescription)
	require.Equal(t, 50.00, service.ServiceCost)
}

func TestCreateServiceCustomerNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateService(ctx, CreateServiceInput{
		CustomerID:         999999,
		StartDate:          time.Now(),
		ProblemDescription: "ghost machine",
		ServiceCost:        10,
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.EqualError(t, err, "customer with id 999999 not found")

	// no service row was created
	services, err := svc.GetServices(ctx)
	require.NoError(t, err)
	require.Empty(t, services)
}

func TestUpdateServiceStatusOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	customer := createTestCustomer(t, svc)
	service := createTestService(t, svc, customer.ID)

	updated, err := svc.UpdateService(ctx, UpdateServiceInput{
		ID:     service.ID,
		Status: strPtr(domain.ServiceStatusCompleted),
	})
	require.NoError(t, err)
	require.Equal(t, domain.ServiceStatusCompleted, updated.Status)
	// all other fields unchanged
	require.Equal(t, service.CustomerID, updated.CustomerID)
	require.Equal(t, service.ProblemDescription, updated.ProblemDescription)
	require.Equal(t, service.ServiceCost, updated.ServiceCost)
	require.Nil(t, updated.CompletionDate)
	require.Nil(t, updated.RepairDescription)
}

func TestUpdateServiceSetAndClearNullable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	customer := createTestCustomer(t, svc)
	service := createTestService(t, svc, customer.ID)

	done := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateService(ctx, UpdateServiceInput{
		ID:                service.ID,
		CompletionDate:    common.NewOptional(done),
		RepairDescription: common.NewOptional("replaced PSU"),
		ServiceCost:       floatPtr(129.995),
		Status:            strPtr(domain.ServiceStatusCompleted),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletionDate)
	require.Equal(t, done.Unix(), updated.CompletionDate.Unix())
	require.NotNil(t, updated.RepairDescription)
	require.Equal(t, "replaced PSU", *updated.RepairDescription)
	require.Equal(t, 130.00, updated.ServiceCost)

	// present-and-null clears the nullable columns, leaves the rest alone
	updated, err = svc.UpdateService(ctx, UpdateServiceInput{
		ID:                service.ID,
		CompletionDate:    common.NullOptional[time.Time](),
		RepairDescription: common.NullOptional[string](),
	})
	require.NoError(t, err)
	require.Nil(t, updated.CompletionDate)
	require.Nil(t, updated.RepairDescription)
	require.Equal(t, domain.ServiceStatusCompleted, updated.Status)
	require.Equal(t, 130.00, updated.ServiceCost)
}

func TestUpdateServiceNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateService(context.Background(), UpdateServiceInput{
		ID:     424242,
		Status: strPtr(domain.ServiceStatusCancelled),
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.EqualError(t, err, "service with id 424242 not found")
}

func TestGetServiceHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	first := createTestCustomer(t, svc)
	second := createTestCustomer(t, svc)
	createTestService(t, svc, first.ID)
	createTestService(t, svc, first.ID)
	createTestService(t, svc, second.ID)

	history, err := svc.GetServiceHistory(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, s := range history {
		require.Equal(t, first.ID, s.CustomerID)
	}
}

func TestCreateSparePartRoundsPrice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	part, err := svc.CreateSparePart(ctx, CreateSparePartInput{
		Name:          "Filter",
		PartNumber:    "F-1",
		StockQuantity: 10,
		UnitPrice:     9.999,
	})
	require.NoError(t, err)
	require.Equal(t, 10.00, part.UnitPrice)
	require.Nil(t, part.Description)
	require.Nil(t, part.Supplier)

	parts, err := svc.GetSpareParts(ctx)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	require.Equal(t, 10.00, parts[0].UnitPrice)
	require.Equal(t, 10, parts[0].StockQuantity)
}

func TestUpdateSparePartPartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	part, err := svc.CreateSparePart(ctx, CreateSparePartInput{
		Name:          "Fan",
		PartNumber:    "FAN-80",
		StockQuantity: 3,
		UnitPrice:     4.20,
		Supplier:      strPtr("ACME"),
	})
	require.NoError(t, err)

	intVal := 7
	updated, err := svc.UpdateSparePart(ctx, UpdateSparePartInput{
		ID:            part.ID,
		StockQuantity: &intVal,
		UnitPrice:     floatPtr(5.555),
		Supplier:      common.NullOptional[string](),
	})
	require.NoError(t, err)
	require.Equal(t, 7, updated.StockQuantity)
	require.Equal(t, 5.56, updated.UnitPrice)
	require.Nil(t, updated.Supplier)
	require.Equal(t, "Fan", updated.Name)
	require.Equal(t, "FAN-80", updated.PartNumber)
}

func TestUpdateSparePartNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateSparePart(context.Background(), UpdateSparePartInput{
		ID:   31337,
		Name: strPtr("nothing"),
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.EqualError(t, err, "spare part with id 31337 not found")
}

func TestGetOutOfStockParts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSparePart(ctx, CreateSparePartInput{
		Name: "Empty", PartNumber: "E-0", StockQuantity: 0, UnitPrice: 1,
	})
	require.NoError(t, err)
	_, err = svc.CreateSparePart(ctx, CreateSparePartInput{
		Name: "Stocked", PartNumber: "S-9", StockQuantity: 9, UnitPrice: 1,
	})
	require.NoError(t, err)

	all, err := svc.GetSpareParts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	empty, err := svc.GetOutOfStockParts(ctx)
	require.NoError(t, err)
	require.Len(t, empty, 1)
	require.Equal(t, "Empty", empty[0].Name)
	require.Zero(t, empty[0].StockQuantity)
}

// Full scenario: customer -> part (price rounded) -> service -> consume 3 of
// 10, then over-consume and verify nothing changed.
func TestConsumeScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	customer, err := svc.CreateCustomer(ctx, CreateCustomerInput{
		Name: "John Doe", Email: "john@x.com", Phone: "555",
	})
	require.NoError(t, err)

	part, err := svc.CreateSparePart(ctx, CreateSparePartInput{
		Name: "Filter", PartNumber: "F-1", StockQuantity: 10, UnitPrice: 9.999,
	})
	require.NoError(t, err)
	require.Equal(t, 10.00, part.UnitPrice)

	service, err := svc.CreateService(ctx, CreateServiceInput{
		CustomerID:         customer.ID,
		StartDate:          time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ProblemDescription: "clogged",
		ServiceCost:        0,
	})
	require.NoError(t, err)

	usage, err := svc.UseSparePartInService(ctx, UseSparePartInput{
		ServiceID:    service.ID,
		SparePartID:  part.ID,
		QuantityUsed: 3,
	})
	require.NoError(t, err)
	require.Equal(t, 3, usage.QuantityUsed)

	parts, err := svc.GetSpareParts(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, parts[0].StockQuantity)

	// over-consume: rejected, stock stays at 7
	_, err = svc.UseSparePartInService(ctx, UseSparePartInput{
		ServiceID:    service.ID,
		SparePartID:  part.ID,
		QuantityUsed: 20,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient stock")

	parts, err = svc.GetSpareParts(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, parts[0].StockQuantity)
}
