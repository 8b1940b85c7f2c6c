package router

import (
	"event-portal/core/backend"
	"event-portal/core/middleware"
	"event-portal/modules/company/controller"

	"github.com/labstack/echo/v4"
)

type CompanyRouter struct {
	CompanyController *controller.CompanyController
}

func NewCompanyRouter(ctrl *controller.CompanyController) *CompanyRouter {
	return &CompanyRouter{CompanyController: ctrl}
}

func (r *CompanyRouter) Setup(e *echo.Echo, pages *echo.Group, mw *middleware.Middleware) {
	pages.GET("/admin/dashboard", r.CompanyController.AdminDashboard)
	pages.GET("/onboarding", r.CompanyController.Onboarding)

	v1 := e.Group("/api/v1", mw.SessionMiddleware())
	private := v1.Group("/company", mw.AuthMiddleware(), mw.RequireRoles(backend.RoleAdmin, backend.RoleOrganizer))
	private.POST("", r.CompanyController.PrivateCreateCompany)
	private.GET("", r.CompanyController.PrivateGetCompany)
	private.PUT("", r.CompanyController.PrivateUpdateCompany)
	private.POST("/invite-organizer", r.CompanyController.PrivateInviteOrganizer)
	private.DELETE("/members/:userId", r.CompanyController.PrivateRemoveMember)
}
