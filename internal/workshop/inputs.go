package workshop

import (
	"time"

	"github.com/workshoplabs/repairtrack/pkg/common"
)

// Update inputs model the partial-update contract: a nil pointer means the
// field was absent and stays unchanged; for nullable fields an
// Optional distinguishes present-and-null (clear) from present-and-value.

type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address *string
}

type UpdateCustomerInput struct {
	ID      int64
	Name    *string
	Email   *string
	Phone   *string
	Address common.Optional[string]
}

type CreateServiceInput struct {
	CustomerID         int64
	StartDate          time.Time
	ProblemDescription string
	ServiceCost        float64
}

type UpdateServiceInput struct {
	ID                int64
	CompletionDate    common.Optional[time.Time]
	RepairDescription common.Optional[string]
	ServiceCost       *float64
	Status            *string
}

type CreateSparePartInput struct {
	Name          string
	Description   *string
	PartNumber    string
	StockQuantity int
	UnitPrice     float64
	Supplier      *string
}

type UpdateSparePartInput struct {
	ID            int64
	Name          *string
	Description   common.Optional[string]
	PartNumber    *string
	StockQuantity *int
	UnitPrice     *float64
	Supplier      common.Optional[string]
}

type UseSparePartInput struct {
	ServiceID    int64
	SparePartID  int64
	QuantityUsed int
}
