package rpcapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workshoplabs/repairtrack/internal/domain"
	"go.uber.org/zap"
)

type errorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, errorResponse{Code: code, Message: message, Detail: detail})
}

// failFromErr maps domain errors onto the wire: NotFound -> 404,
// InsufficientStock -> 409, anything else is a storage failure -> 500.
func failFromErr(c echo.Context, err error) error {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", notFound.Error(), nil)
	}
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return fail(c, http.StatusConflict, "INSUFFICIENT_STOCK", insufficient.Error(), map[string]int{
			"available": insufficient.Available,
			"requested": insufficient.Requested,
		})
	}
	zap.L().Error("rpc operation failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "operation failed", err.Error())
}
