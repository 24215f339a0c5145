package rpcapi

import (
	"net/http"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"github.com/workshoplabs/repairtrack/internal/webserver"
	"github.com/workshoplabs/repairtrack/internal/workshop"
	"github.com/workshoplabs/repairtrack/pkg/common"
)

type createServicePayload struct {
	CustomerID         int64   `json:"customer_id" validate:"required,gt=0"`
	StartDate          string  `json:"start_date" validate:"required"`
	ProblemDescription string  `json:"problem_description" validate:"required,min=1"`
	ServiceCost        float64 `json:"service_cost" validate:"gte=0"`
}

type updateServicePayload struct {
	ID                int64                   `json:"id" validate:"required,gt=0"`
	CompletionDate    common.Optional[string] `json:"completion_date"`
	RepairDescription common.Optional[string] `json:"repair_description"`
	ServiceCost       *float64                `json:"service_cost" validate:"omitempty,gte=0"`
	Status            *string                 `json:"status" validate:"omitempty,oneof=in_progress completed cancelled"`
}

func registerServiceRoutes() {
	webserver.ApiPOST("/rpc/createService", createService)
	webserver.ApiGET("/rpc/getServices", getServices)
	webserver.ApiPOST("/rpc/updateService", updateService)
	webserver.ApiGET("/rpc/getServiceHistory", getServiceHistory)
}

func createService(c echo.Context) error {
	var payload createServicePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse service", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid service input", err.Error())
	}
	startDate, err := dateparse.ParseAny(payload.StartDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid start_date", err.Error())
	}

	service, err := svc.CreateService(c.Request().Context(), workshop.CreateServiceInput{
		CustomerID:         payload.CustomerID,
		StartDate:          startDate,
		ProblemDescription: payload.ProblemDescription,
		ServiceCost:        payload.ServiceCost,
	})
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, service)
}

func getServices(c echo.Context) error {
	services, err := svc.GetServices(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, services)
}

func getServiceHistory(c echo.Context) error {
	customerID := cast.ToInt64(c.QueryParam("customer_id"))
	if customerID <= 0 {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "customer_id is required", nil)
	}
	services, err := svc.GetServiceHistory(c.Request().Context(), customerID)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, services)
}

func updateService(c echo.Context) error {
	var payload updateServicePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse service", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid service input", err.Error())
	}

	// completion_date arrives as an arbitrary date string, null to clear, or
	// is absent entirely; only the first case needs parsing.
	var completionDate common.Optional[time.Time]
	if payload.CompletionDate.Set {
		if payload.CompletionDate.Valid {
			parsed, err := dateparse.ParseAny(payload.CompletionDate.Value)
			if err != nil {
				return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid completion_date", err.Error())
			}
			completionDate = common.NewOptional(parsed)
		} else {
			completionDate = common.NullOptional[time.Time]()
		}
	}

	service, err := svc.UpdateService(c.Request().Context(), workshop.UpdateServiceInput{
		ID:                payload.ID,
		CompletionDate:    completionDate,
		RepairDescription: payload.RepairDescription,
		ServiceCost:       payload.ServiceCost,
		Status:            payload.Status,
	})
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, service)
}
