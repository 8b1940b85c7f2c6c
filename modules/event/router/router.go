package router

import (
	"event-portal/core/backend"
	"event-portal/core/middleware"
	"event-portal/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(ctrl *controller.EventController) *EventRouter {
	return &EventRouter{EventController: ctrl}
}

func (r *EventRouter) Setup(e *echo.Echo, pages *echo.Group, mw *middleware.Middleware) {
	pages.GET("/events", r.EventController.PublicListEvents)
	pages.GET("/events/:id", r.EventController.PublicGetEvent)

	v1 := e.Group("/api/v1", mw.SessionMiddleware())
	v1.GET("/events", r.EventController.PublicListEvents)
	v1.GET("/events/:id", r.EventController.PublicGetEvent)

	private := v1.Group("/events", mw.AuthMiddleware())
	private.POST("/:id/join", r.EventController.PrivateJoinEvent, mw.RequireRoles(backend.RoleParticipant))

	manage := private.Group("", mw.RequireRoles(backend.RoleAdmin, backend.RoleOrganizer))
	manage.POST("", r.EventController.PrivateCreateEvent)
	manage.PATCH("/:id", r.EventController.PrivateUpdateEvent)
	manage.DELETE("/:id", r.EventController.PrivateDeleteEvent)
	manage.GET("/:id/participants", r.EventController.PrivateListParticipants)
	manage.POST("/:id/participants/:pid/approve", r.EventController.PrivateApproveParticipant)
}
