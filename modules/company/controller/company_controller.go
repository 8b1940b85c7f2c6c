package controller

import (
	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/middleware"
	"event-portal/core/params"
	"event-portal/core/utils"
	"event-portal/modules/company/dto"
	"event-portal/modules/company/service"
	"event-portal/modules/company/validator"

	"github.com/labstack/echo/v4"
)

type CompanyController struct {
	controller.BaseController
	CompanyService service.CompanyServiceInterface
}

func NewCompanyController(svc service.CompanyServiceInterface) *CompanyController {
	return &CompanyController{
		BaseController: controller.NewBaseController(),
		CompanyService: svc,
	}
}

// PrivateCreateCompany creates the company owned by the signed-in user and assigns it to the session
// @Summary Create company
// @Description Creates the company owned by the signed-in user and assigns it to the session
// @Tags Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CompanyRequest true "Create company data"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /company [post]
func (controller *CompanyController) PrivateCreateCompany(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CompanyRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCompanyRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	company, err := controller.CompanyService.CreateCompany(ctx, middleware.GetSession(c), requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, company, "Company created successfully!")
}

// PrivateGetCompany refreshes and returns the company snapshot of the session
// @Summary Get company
// @Description Refreshes and returns the company snapshot of the session
// @Tags Company
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CompanyResponse
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /company [get]
func (controller *CompanyController) PrivateGetCompany(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := controller.CompanyService.GetCompany(ctx, middleware.GetSession(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, company, "get company success")
}

// PrivateUpdateCompany updates the session company
// @Summary Update company
// @Description Updates the session company
// @Tags Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CompanyRequest true "Update company data"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /company [put]
func (controller *CompanyController) PrivateUpdateCompany(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CompanyRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCompanyRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	company, err := controller.CompanyService.UpdateCompany(ctx, middleware.GetSession(c), requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, company, "Company updated successfully!")
}

// PrivateInviteOrganizer invites a user to the session company by email
// @Summary Invite organizer
// @Description Invites a user to the session company by email
// @Tags Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.InviteRequest true "Invite organizer data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /company/invite-organizer [post]
func (controller *CompanyController) PrivateInviteOrganizer(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.InviteRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateInviteRequest(requestData)
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	if err := controller.CompanyService.InviteOrganizer(ctx, middleware.GetSession(c), requestData); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "Invitation sent to "+requestData.Email)
}

// PrivateRemoveMember removes a member from the company and queues a snapshot refresh
// @Summary Remove member
// @Description Removes a member from the company and queues a snapshot refresh
// @Tags Company
// @Security BearerAuth
// @Produce json
// @Param userId path int true "Member user ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /company/members/{userId} [delete]
func (controller *CompanyController) PrivateRemoveMember(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := utils.ToInt64(c.Param("userId"))
	if !ok {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid userId")
	}
	if err := controller.CompanyService.RemoveMember(ctx, middleware.GetSession(c), userID); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "User deleted successfully")
}

// AdminDashboard handles GET /admin/dashboard?search&category&status&page
func (controller *CompanyController) AdminDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	query := service.NewDashboardQuery(params.NewQueryParams(c))
	dash, err := controller.CompanyService.Dashboard(ctx, middleware.GetSession(c), query)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, dash, "get dashboard success")
}

func (controller *CompanyController) Onboarding(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := controller.CompanyService.Onboarding(ctx, middleware.GetSession(c))
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, resp, "get onboarding success")
}
