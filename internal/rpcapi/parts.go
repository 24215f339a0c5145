package rpcapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workshoplabs/repairtrack/internal/webserver"
	"github.com/workshoplabs/repairtrack/internal/workshop"
	"github.com/workshoplabs/repairtrack/pkg/common"
)

type createSparePartPayload struct {
	Name          string  `json:"name" validate:"required,min=1"`
	Description   *string `json:"description"`
	PartNumber    string  `json:"part_number" validate:"required,min=1"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
	Supplier      *string `json:"supplier"`
}

type updateSparePartPayload struct {
	ID            int64                   `json:"id" validate:"required,gt=0"`
	Name          *string                 `json:"name" validate:"omitempty,min=1"`
	Description   common.Optional[string] `json:"description"`
	PartNumber    *string                 `json:"part_number" validate:"omitempty,min=1"`
	StockQuantity *int                    `json:"stock_quantity" validate:"omitempty,gte=0"`
	UnitPrice     *float64                `json:"unit_price" validate:"omitempty,gte=0"`
	Supplier      common.Optional[string] `json:"supplier"`
}

type useSparePartPayload struct {
	ServiceID    int64 `json:"service_id" validate:"required,gt=0"`
	SparePartID  int64 `json:"spare_part_id" validate:"required,gt=0"`
	QuantityUsed int   `json:"quantity_used" validate:"required,gt=0"`
}

func registerSparePartRoutes() {
	webserver.ApiPOST("/rpc/createSparePart", createSparePart)
	webserver.ApiGET("/rpc/getSpareParts", getSpareParts)
	webserver.ApiPOST("/rpc/updateSparePart", updateSparePart)
	webserver.ApiGET("/rpc/getOutOfStockParts", getOutOfStockParts)
	webserver.ApiPOST("/rpc/useSparePartInService", useSparePartInService)
}

func createSparePart(c echo.Context) error {
	var payload createSparePartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse spare part", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid spare part input", err.Error())
	}

	part, err := svc.CreateSparePart(c.Request().Context(), workshop.CreateSparePartInput{
		Name:          payload.Name,
		Description:   payload.Description,
		PartNumber:    payload.PartNumber,
		StockQuantity: payload.StockQuantity,
		UnitPrice:     payload.UnitPrice,
		Supplier:      payload.Supplier,
	})
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, part)
}

func getSpareParts(c echo.Context) error {
	parts, err := svc.GetSpareParts(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, parts)
}

func getOutOfStockParts(c echo.Context) error {
	parts, err := svc.GetOutOfStockParts(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, parts)
}

func updateSparePart(c echo.Context) error {
	var payload updateSparePartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse spare part", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid spare part input", err.Error())
	}

	part, err := svc.UpdateSparePart(c.Request().Context(), workshop.UpdateSparePartInput{
		ID:            payload.ID,
		Name:          payload.Name,
		Description:   payload.Description,
		PartNumber:    payload.PartNumber,
		StockQuantity: payload.StockQuantity,
		UnitPrice:     payload.UnitPrice,
		Supplier:      payload.Supplier,
	})
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, part)
}

func useSparePartInService(c echo.Context) error {
	var payload useSparePartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "unable to parse usage request", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid usage input", err.Error())
	}

	usage, err := svc.UseSparePartInService(c.Request().Context(), workshop.UseSparePartInput{
		ServiceID:    payload.ServiceID,
		SparePartID:  payload.SparePartID,
		QuantityUsed: payload.QuantityUsed,
	})
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, usage)
}
