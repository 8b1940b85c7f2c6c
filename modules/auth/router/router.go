package router

import (
	"event-portal/core/middleware"
	"event-portal/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(ctrl *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: ctrl}
}

func (r *AuthRouter) Setup(e *echo.Echo, pages *echo.Group, mw *middleware.Middleware) {
	pages.GET("/", r.AuthController.HomePage)
	pages.GET("/auth/login", r.AuthController.LoginPage)
	pages.GET("/unauthorized", r.AuthController.UnauthorizedPage)

	v1 := e.Group("/api/v1", mw.SessionMiddleware())
	auth := v1.Group("/auth")
	auth.POST("/login", r.AuthController.Login)
	auth.POST("/otp/send", r.AuthController.SendOTP)
	auth.POST("/otp/verify", r.AuthController.VerifyOTP)
	auth.POST("/password/request-reset", r.AuthController.RequestPasswordReset)
	auth.POST("/password/reset", r.AuthController.ResetPassword)
	auth.GET("/verify", r.AuthController.VerifyEmail)
	auth.POST("/logout", r.AuthController.Logout)
}
