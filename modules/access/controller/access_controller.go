package controller

import (
	"net/http"

	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/core/middleware"
	"event-portal/modules/access/dto"
	"event-portal/modules/access/service"

	"github.com/labstack/echo/v4"
)

type AccessController struct {
	controller.BaseController
}

func NewAccessController() *AccessController {
	return &AccessController{BaseController: controller.NewBaseController()}
}

// Guard gates page routes. It must run after the session middleware.
func (controller *AccessController) Guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			decision := service.Evaluate(middleware.GetSession(c), path)

			switch decision.Kind {
			case service.KindPending:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, dto.LoadingResponse{State: "loading"})
			case service.KindRedirect:
				logger.Debug("AccessController:Guard:Redirect", "path", path, "target", decision.Target)
				return c.Redirect(http.StatusFound, decision.Target)
			default:
				return next(c)
			}
		}
	}
}

// Resolve reports the access decision for a path in the current session
// @Summary Resolve access
// @Description Runs the navigation guard for path and returns allow, redirect or loading
// @Tags Access
// @Produce json
// @Param path query string true "Page path"
// @Success 200 {object} dto.DecisionResponse
// @Failure 400 {object} errors.AppError
// @Router /access/resolve [get]
func (controller *AccessController) Resolve(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return controller.BadRequest(errors.ErrInvalidInput, "path is required")
	}

	decision := service.Evaluate(middleware.GetSession(c), path)
	return controller.SuccessResponse(c, dto.ToDecisionResponse(path, decision), "resolve access success")
}
