package participation

import (
	"event-portal/core/backend"
	"event-portal/core/middleware"
	"event-portal/modules/participation/controller"
	"event-portal/modules/participation/router"
	"event-portal/modules/participation/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, pages *echo.Group, api backend.EventAPI, mw *middleware.Middleware) {
	svc := service.NewDashboardService(api)
	ctrl := controller.NewParticipationController(svc)
	router.NewParticipationRouter(ctrl).Setup(e, pages, mw)
}
