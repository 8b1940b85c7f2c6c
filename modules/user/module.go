package user

import (
	"event-portal/core/backend"
	"event-portal/core/middleware"
	sessionservice "event-portal/modules/session/service"
	"event-portal/modules/user/controller"
	"event-portal/modules/user/router"
	"event-portal/modules/user/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, mw *middleware.Middleware, api backend.UserAPI, sessions sessionservice.SessionServiceInterface, companies service.CompanyRefresher) {
	svc := service.NewUserService(api, sessions, companies)
	ctrl := controller.NewUserController(svc, mw)
	router.NewUserRouter(ctrl).Setup(e, mw)
}
