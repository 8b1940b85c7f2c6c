package controller

import (
	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/middleware"
	"event-portal/modules/auth/dto"
	"event-portal/modules/auth/service"
	"event-portal/modules/auth/validator"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
	cookies     middleware.CookieWriter
}

func NewAuthController(svc service.AuthServiceInterface, cookies middleware.CookieWriter) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
		cookies:        cookies,
	}
}

// Login signs in with email and password and opens a portal session
// @Summary Login
// @Description Signs in with email and password and opens a portal session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login data"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /auth/login [post]
func (controller *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateLoginRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	loginResponse, err := controller.AuthService.Login(ctx, middleware.GetSession(c), requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	controller.cookies.SetSessionCookie(c, loginResponse.Token)
	return controller.SuccessResponse(c, loginResponse, "Login success")
}

// SendOTP asks the backend to send a one-time code
// @Summary Send OTP
// @Description Asks the backend to send a one-time code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SendOTPRequest true "Send OTP data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Router /auth/otp/send [post]
func (controller *AuthController) SendOTP(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.SendOTPRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateSendOTPRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	if err := controller.AuthService.SendOTP(ctx, requestData); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "Please check your email for the OTP")
}

// VerifyOTP verifies a one-time code and opens a session when the backend returns one
// @Summary Verify OTP
// @Description Verifies a one-time code and opens a session when the backend returns one
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Verify OTP data"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /auth/otp/verify [post]
func (controller *AuthController) VerifyOTP(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.VerifyOTPRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateVerifyOTPRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	otpResponse, err := controller.AuthService.VerifyOTP(ctx, middleware.GetSession(c), requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	if otpResponse == nil {
		return controller.SuccessResponse(c, nil, "OTP verified")
	}
	controller.cookies.SetSessionCookie(c, otpResponse.Token)
	return controller.SuccessResponse(c, otpResponse, "Verify OTP success")
}

// RequestPasswordReset sends a password reset email
// @Summary Request password reset
// @Description Sends a password reset email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RequestResetRequest true "Request password reset data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Router /auth/password/request-reset [post]
func (controller *AuthController) RequestPasswordReset(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.RequestResetRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateRequestResetRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	if err := controller.AuthService.RequestPasswordReset(ctx, requestData); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "If this email exists, a reset link has been sent.")
}

// ResetPassword sets a new password from a reset token
// @Summary Reset password
// @Description Sets a new password from a reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset password data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Router /auth/password/reset [post]
func (controller *AuthController) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.ResetPasswordRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateResetPasswordRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	if err := controller.AuthService.ResetPassword(ctx, requestData); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "Password reset successful!")
}

// VerifyEmail confirms an email address from the link token
// @Summary Verify email
// @Description Confirms an email address from the link token
// @Tags Auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Router /auth/verify [get]
func (controller *AuthController) VerifyEmail(c echo.Context) error {
	ctx := c.Request().Context()

	token := c.QueryParam("token")
	if token == "" {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid verification token")
	}
	if err := controller.AuthService.VerifyEmail(ctx, token); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "Email verified successfully!")
}

// Logout clears the user, company and events of the session
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (controller *AuthController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := controller.AuthService.Logout(ctx, middleware.GetSession(c)); err != nil {
		return controller.ErrorResponse(c, err)
	}
	controller.cookies.ClearSessionCookie(c)
	return controller.SuccessResponse(c, nil, "Logout success")
}
