package rpcapi

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/workshoplabs/repairtrack/internal/webserver"
)

func registerHealthRoutes() {
	webserver.ApiGET("/rpc/healthcheck", healthcheck)
}

func healthcheck(c echo.Context) error {
	status := "ok"
	if err := svc.Ping(c.Request().Context()); err != nil {
		status = "degraded"
	}
	return ok(c, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
