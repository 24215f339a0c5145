package rpcapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workshoplabs/repairtrack/internal/webserver"
	"github.com/workshoplabs/repairtrack/internal/workshop"
	"github.com/workshoplabs/repairtrack/pkg/common"
)

type createCustomerPayload struct {
	Name    string  `json:"name" validate:"required,min=1"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required,min=1"`
	Address *string `json:"address"`
}

type updateCustomerPayload struct {
	ID      int64                   `json:"id" validate:"required,gt=0"`
	Name    *string                 `json:"name" validate:"omitempty,min=1"`
	Email   *string                 `json:"email" validate:"omitempty,email"`
	Phone   *string                 `json:"phone" validate:"omitempty,min=1"`
	Address common.Optional[string] `json:"address"`
}

func registerCustomerRoutes() {
	webserver.ApiPOST("/rpc/createCustomer", createCustomer)
	webserver.ApiGET("/rpc/getCustomers", getCustomers)
	webserver.ApiPOST("/rpc/updateCustomer", updateCustomer)
}

func createCustomer(c echo.Context) error {
	var payload createCustomerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse customer", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid customer input", err.Error())
	}

	customer, err := svc.CreateCustomer(c.Request().Context(), workshop.CreateCustomerInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
	})
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, customer)
}

func getCustomers(c echo.Context) error {
	customers, err := svc.GetCustomers(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, customers)
}

func updateCustomer(c echo.Context) error {
	var payload updateCustomerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse customer", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid customer input", err.Error())
	}

	customer, err := svc.UpdateCustomer(c.Request().Context(), workshop.UpdateCustomerInput{
		ID:      payload.ID,
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
	})
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, customer)
}
