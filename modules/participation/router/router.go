package router

import (
	"event-portal/core/backend"
	"event-portal/core/middleware"
	"event-portal/modules/participation/controller"

	"github.com/labstack/echo/v4"
)

type ParticipationRouter struct {
	ParticipationController *controller.ParticipationController
}

func NewParticipationRouter(ctrl *controller.ParticipationController) *ParticipationRouter {
	return &ParticipationRouter{ParticipationController: ctrl}
}

func (r *ParticipationRouter) Setup(e *echo.Echo, pages *echo.Group, mw *middleware.Middleware) {
	pages.GET("/participant/dashboard", r.ParticipationController.Dashboard)

	v1 := e.Group("/api/v1", mw.SessionMiddleware())
	private := v1.Group("/participations", mw.AuthMiddleware(), mw.RequireRoles(backend.RoleParticipant))
	private.GET("", r.ParticipationController.ListMine)
	private.GET("/dashboard", r.ParticipationController.Dashboard)
}
