package controller

import (
	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/middleware"
	"event-portal/modules/auth/dto"
	"event-portal/modules/session/entity"

	"github.com/labstack/echo/v4"
)

func homeLinks(sess entity.Session) []dto.PageLink {
	links := []dto.PageLink{{Label: "Browse events", Href: constants.RouteEvents}}
	switch {
	case !sess.SignedIn():
		links = append(links, dto.PageLink{Label: "Login", Href: constants.RouteLogin})
	case sess.Role() == backend.RoleParticipant:
		links = append(links, dto.PageLink{Label: "My dashboard", Href: constants.RouteParticipantDashboard})
	case sess.User.HasCompany():
		links = append(links, dto.PageLink{Label: "Admin dashboard", Href: constants.RouteAdminDashboard})
	default:
		links = append(links, dto.PageLink{Label: "Create your company", Href: constants.RouteOnboarding})
	}
	return links
}

func page(name string, sess entity.Session, links []dto.PageLink) *dto.PageResponse {
	return &dto.PageResponse{Page: name, SignedIn: sess.SignedIn(), Role: sess.Role(), Links: links}
}

func (controller *AuthController) HomePage(c echo.Context) error {
	sess := middleware.GetSession(c)
	return controller.SuccessResponse(c, page("home", sess, homeLinks(sess)), "get home success")
}

func (controller *AuthController) LoginPage(c echo.Context) error {
	links := []dto.PageLink{
		{Label: "Login with OTP", Href: "/auth/otp/send"},
		{Label: "Forgot password", Href: "/auth/forgot-password"},
	}
	return controller.SuccessResponse(c, page("login", middleware.GetSession(c), links), "get login success")
}

func (controller *AuthController) UnauthorizedPage(c echo.Context) error {
	sess := middleware.GetSession(c)
	return controller.SuccessResponse(c, page("unauthorized", sess, homeLinks(sess)), "You are not allowed to view this page")
}
