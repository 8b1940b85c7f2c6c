package auth

import (
	"event-portal/core/backend"
	"event-portal/core/middleware"
	"event-portal/modules/auth/controller"
	"event-portal/modules/auth/router"
	"event-portal/modules/auth/service"
	sessionservice "event-portal/modules/session/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, pages *echo.Group, mw *middleware.Middleware, api backend.AuthAPI, companies backend.CompanyAPI, sessions sessionservice.SessionServiceInterface) {
	svc := service.NewAuthService(api, companies, sessions)
	ctrl := controller.NewAuthController(svc, mw)
	router.NewAuthRouter(ctrl).Setup(e, pages, mw)
}
