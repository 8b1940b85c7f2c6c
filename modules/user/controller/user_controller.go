package controller

import (
	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/middleware"
	"event-portal/modules/user/dto"
	"event-portal/modules/user/service"
	"event-portal/modules/user/validator"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
	cookies     middleware.CookieWriter
}

func NewUserController(svc service.UserServiceInterface, cookies middleware.CookieWriter) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
		cookies:        cookies,
	}
}

// PrivateUpdateMe renames the session user
// @Summary Update profile
// @Description Replaces the session user; org roles also refresh the company
// @Tags User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateMeRequest true "Profile data"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /users/me [patch]
func (controller *UserController) PrivateUpdateMe(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.UpdateMeRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateUpdateMe(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	user, err := controller.UserService.UpdateMe(ctx, middleware.GetSession(c), requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, user, "Name updated")
}

// PrivateChangePassword changes the password of the session user
// @Summary Change password
// @Tags User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Old and new passwords"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /users/me/change-password [post]
func (controller *UserController) PrivateChangePassword(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.ChangePasswordRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateChangePassword(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	if err := controller.UserService.ChangePassword(ctx, middleware.GetSession(c), requestData); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "Password changed")
}

// PrivateDeleteMe deletes the account and clears the session
// @Summary Delete account
// @Tags User
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Router /users/me [delete]
func (controller *UserController) PrivateDeleteMe(c echo.Context) error {
	ctx := c.Request().Context()

	if err := controller.UserService.DeleteMe(ctx, middleware.GetSession(c)); err != nil {
		return controller.ErrorResponse(c, err)
	}
	controller.cookies.ClearSessionCookie(c)
	return controller.SuccessResponse(c, nil, "Account deleted")
}
