package router

import (
	"event-portal/core/middleware"
	"event-portal/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(ctrl *controller.UserController) *UserRouter {
	return &UserRouter{UserController: ctrl}
}

func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1", mw.SessionMiddleware())
	private := v1.Group("/users/me", mw.AuthMiddleware())
	private.PATCH("", r.UserController.PrivateUpdateMe)
	private.POST("/change-password", r.UserController.PrivateChangePassword)
	private.DELETE("", r.UserController.PrivateDeleteMe)
}
