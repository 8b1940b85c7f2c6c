package controller

import (
	"event-portal/core/controller"
	"event-portal/core/middleware"
	"event-portal/modules/participation/mapper"
	"event-portal/modules/participation/service"

	"github.com/labstack/echo/v4"
)

type ParticipationController struct {
	controller.BaseController
	DashboardService service.DashboardServiceInterface
}

func NewParticipationController(svc service.DashboardServiceInterface) *ParticipationController {
	return &ParticipationController{
		BaseController:   controller.NewBaseController(),
		DashboardService: svc,
	}
}

// Dashboard handles GET /participant/dashboard?filter=all|pending|confirmed|upcoming|past
// @Summary Participant dashboard
// @Description Fetches each joined event and filters the entries; failed fetches are skipped
// @Tags Participation
// @Security BearerAuth
// @Produce json
// @Param filter query string false "all, pending, confirmed, upcoming or past"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} errors.AppError
// @Router /participations/dashboard [get]
func (controller *ParticipationController) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	sess := middleware.GetSession(c)
	filter := service.ParseFilter(c.QueryParam("filter"))

	dash, appErr := controller.DashboardService.Dashboard(ctx, sess, filter)
	if appErr != nil {
		return controller.ErrorResponse(c, appErr)
	}
	return controller.SuccessResponse(c, mapper.ToDashboardResponse(dash), "get dashboard success")
}

// ListMine returns the participations of the session user
// @Summary My participations
// @Tags Participation
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.ParticipationResponse
// @Failure 401 {object} errors.AppError
// @Router /participations [get]
func (controller *ParticipationController) ListMine(c echo.Context) error {
	sess := middleware.GetSession(c)
	return controller.SuccessResponse(c, mapper.ToParticipationResponses(sess.User.Participations), "get participations success")
}
