package company

import (
	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/middleware"
	"event-portal/core/queue"
	"event-portal/modules/company/controller"
	"event-portal/modules/company/router"
	"event-portal/modules/company/service"
	"event-portal/modules/company/task"
	sessionservice "event-portal/modules/session/service"

	"github.com/labstack/echo/v4"
)

// Init wires the company pages and actions. The returned service keeps company
// snapshots fresh for the other modules. client and worker may be nil.
func Init(e *echo.Echo, pages *echo.Group, mw *middleware.Middleware, api backend.CompanyAPI, users backend.UserAPI,
	sessions sessionservice.SessionServiceInterface, client queue.Client, worker queue.Server) *service.CompanyService {
	svc := service.NewCompanyService(api, users, sessions, client)
	ctrl := controller.NewCompanyController(svc)
	router.NewCompanyRouter(ctrl).Setup(e, pages, mw)

	if worker != nil {
		worker.Register(constants.TaskCompanyRefresh, task.NewRefreshHandler(svc).Handle)
	}
	return svc
}
