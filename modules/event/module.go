package event

import (
	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/middleware"
	"event-portal/core/queue"
	"event-portal/core/storage"
	"event-portal/modules/event/controller"
	"event-portal/modules/event/router"
	"event-portal/modules/event/service"
	"event-portal/modules/event/task"
	sessionservice "event-portal/modules/session/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event pages and actions. uploader, client and worker may be nil.
// serviceToken authenticates the mark-expired job; empty runs it anonymously.
func Init(e *echo.Echo, pages *echo.Group, mw *middleware.Middleware, api backend.EventAPI, sessions sessionservice.SessionServiceInterface,
	companies service.CompanyRefresher, uploader storage.Uploader, client queue.Client, worker queue.Server, serviceToken string) {
	svc := service.NewEventService(api, sessions, companies, uploader, client)
	ctrl := controller.NewEventController(svc)
	router.NewEventRouter(ctrl).Setup(e, pages, mw)

	if worker != nil {
		worker.Register(constants.TaskMarkExpired, task.NewMarkExpiredHandler(svc, serviceToken).Handle)
	}
}
