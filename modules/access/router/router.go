package router

import (
	"event-portal/core/middleware"
	"event-portal/modules/access/controller"

	"github.com/labstack/echo/v4"
)

type AccessRouter struct {
	AccessController *controller.AccessController
}

func NewAccessRouter(ctrl *controller.AccessController) *AccessRouter {
	return &AccessRouter{AccessController: ctrl}
}

func (r *AccessRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1", mw.SessionMiddleware())
	v1.GET("/access/resolve", r.AccessController.Resolve)
}
