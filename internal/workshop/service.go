package workshop

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"github.com/workshoplabs/repairtrack/internal/domain"
	"github.com/workshoplabs/repairtrack/internal/repository"
	"github.com/workshoplabs/repairtrack/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WorkshopService implements the repair shop domain operations. Each method
// enforces business preconditions (existence checks, stock sufficiency),
// delegates persistence to the repositories and normalizes monetary fields.
type WorkshopService struct {
	db        *gorm.DB
	customers repository.CustomerRepository
	services  repository.ServiceRepository
	parts     repository.SparePartRepository
	usages    repository.UsageRepository
}

func NewWorkshopService(db *gorm.DB) *WorkshopService {
	return &WorkshopService{
		db:        db,
		customers: repository.NewGormCustomerRepository(db),
		services:  repository.NewGormServiceRepository(db),
		parts:     repository.NewGormSparePartRepository(db),
		usages:    repository.NewGormUsageRepository(db),
	}
}

// Ping reports whether the underlying store is reachable.
func (s *WorkshopService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "acquire sql connection")
	}
	return sqlDB.PingContext(ctx)
}

// notFoundOr translates a missing-row error into a typed domain error and
// wraps anything else as a storage failure.
func notFoundOr(err error, kind string, id int64) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFound(kind, id)
	}
	return errors.Wrapf(err, "query %s %d", kind, id)
}

// Customer operations

func (s *WorkshopService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		zap.L().Error("customer creation failed", zap.Error(err))
		return nil, errors.Wrap(err, "create customer")
	}
	return customer, nil
}

func (s *WorkshopService) GetCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query customers")
	}
	return customers, nil
}

func (s *WorkshopService) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*domain.Customer, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address.Set {
		updates["address"] = input.Address.Ptr()
	}

	customer, err := s.customers.Update(ctx, input.ID, updates)
	if err != nil {
		return nil, notFoundOr(err, "customer", input.ID)
	}
	return customer, nil
}

// Service operations

func (s *WorkshopService) CreateService(ctx context.Context, input CreateServiceInput) (*domain.Service, error) {
	if _, err := s.customers.GetByID(ctx, input.CustomerID); err != nil {
		return nil, notFoundOr(err, "customer", input.CustomerID)
	}

	// New services always start in progress with no completion date and no
	// repair description, whatever the caller sent.
	service := &domain.Service{
		CustomerID:         input.CustomerID,
		StartDate:          input.StartDate,
		ProblemDescription: input.ProblemDescription,
		ServiceCost:        common.Round2(input.ServiceCost),
		Status:             domain.ServiceStatusInProgress,
		CompletionDate:     nil,
		RepairDescription:  nil,
	}
	if err := s.services.Create(ctx, service); err != nil {
		zap.L().Error("service creation failed", zap.Error(err))
		return nil, errors.Wrap(err, "create service")
	}
	return service, nil
}

func (s *WorkshopService) GetServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.services.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query services")
	}
	return services, nil
}

func (s *WorkshopService) GetServiceHistory(ctx context.Context, customerID int64) ([]domain.Service, error) {
	services, err := s.services.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrapf(err, "query service history for customer %d", customerID)
	}
	return services, nil
}

func (s *WorkshopService) UpdateService(ctx context.Context, input UpdateServiceInput) (*domain.Service, error) {
	updates := map[string]interface{}{}
	if input.CompletionDate.Set {
		updates["completion_date"] = input.CompletionDate.Ptr()
	}
	if input.RepairDescription.Set {
		updates["repair_description"] = input.RepairDescription.Ptr()
	}
	if input.ServiceCost != nil {
		updates["service_cost"] = common.Round2(*input.ServiceCost)
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	service, err := s.services.Update(ctx, input.ID, updates)
	if err != nil {
		return nil, notFoundOr(err, "service", input.ID)
	}
	return service, nil
}

// Spare part operations

func (s *WorkshopService) CreateSparePart(ctx context.Context, input CreateSparePartInput) (*domain.SparePart, error) {
	part := &domain.SparePart{
		Name:          input.Name,
		Description:   input.Description,
		PartNumber:    input.PartNumber,
		StockQuantity: input.StockQuantity,
		UnitPrice:     common.Round2(input.UnitPrice),
		Supplier:      input.Supplier,
	}
	if err := s.parts.Create(ctx, part); err != nil {
		zap.L().Error("spare part creation failed", zap.Error(err))
		return nil, errors.Wrap(err, "create spare part")
	}
	return part, nil
}

func (s *WorkshopService) GetSpareParts(ctx context.Context) ([]domain.SparePart, error) {
	parts, err := s.parts.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query spare parts")
	}
	return parts, nil
}

func (s *WorkshopService) GetOutOfStockParts(ctx context.Context) ([]domain.SparePart, error) {
	parts, err := s.parts.GetOutOfStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query out-of-stock parts")
	}
	return parts, nil
}

func (s *WorkshopService) UpdateSparePart(ctx context.Context, input UpdateSparePartInput) (*domain.SparePart, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description.Set {
		updates["description"] = input.Description.Ptr()
	}
	if input.PartNumber != nil {
		updates["part_number"] = *input.PartNumber
	}
	if input.StockQuantity != nil {
		updates["stock_quantity"] = *input.StockQuantity
	}
	if input.UnitPrice != nil {
		updates["unit_price"] = common.Round2(*input.UnitPrice)
	}
	if input.Supplier.Set {
		updates["supplier"] = input.Supplier.Ptr()
	}

	part, err := s.parts.Update(ctx, input.ID, updates)
	if err != nil {
		return nil, notFoundOr(err, "spare part", input.ID)
	}
	return part, nil
}

// UseSparePartInService consumes stock for a service inside a single
// transaction. On any failure the store is left exactly as it was: no usage
// row without its matching stock decrement, and never a negative quantity.
func (s *WorkshopService) UseSparePartInService(ctx context.Context, input UseSparePartInput) (*domain.ServiceSparePart, error) {
	usage, err := s.usages.Consume(ctx, input.ServiceID, input.SparePartID, input.QuantityUsed)
	if err != nil {
		var nf *domain.NotFoundError
		var is *domain.InsufficientStockError
		if !stderrors.As(err, &nf) && !stderrors.As(err, &is) {
			zap.L().Error("spare part usage failed",
				zap.Int64("service_id", input.ServiceID),
				zap.Int64("spare_part_id", input.SparePartID),
				zap.Int("quantity_used", input.QuantityUsed),
				zap.Error(err))
			return nil, errors.Wrap(err, "consume spare part")
		}
		return nil, err
	}

	zap.L().Info("spare part consumed",
		zap.Int64("service_id", input.ServiceID),
		zap.Int64("spare_part_id", input.SparePartID),
		zap.Int("quantity_used", input.QuantityUsed))
	return usage, nil
}
