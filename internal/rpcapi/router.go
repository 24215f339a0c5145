package rpcapi

import (
	"github.com/workshoplabs/repairtrack/internal/workshop"
)

var svc *workshop.WorkshopService

// InitRouter wires the workshop service into the RPC routes. Queries are
// registered as GET, mutations as POST, all under /rpc.
func InitRouter(service *workshop.WorkshopService) {
	svc = service
	registerHealthRoutes()
	registerCustomerRoutes()
	registerServiceRoutes()
	registerSparePartRoutes()
}
