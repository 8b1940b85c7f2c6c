package access

import (
	"event-portal/core/middleware"
	"event-portal/modules/access/controller"
	"event-portal/modules/access/router"

	"github.com/labstack/echo/v4"
)

// Init registers the resolve endpoint and returns the page guard.
func Init(e *echo.Echo, mw *middleware.Middleware) echo.MiddlewareFunc {
	ctrl := controller.NewAccessController()
	router.NewAccessRouter(ctrl).Setup(e, mw)
	return ctrl.Guard()
}
