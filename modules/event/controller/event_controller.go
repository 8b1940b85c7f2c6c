package controller

import (
	"time"

	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/core/middleware"
	"event-portal/core/params"
	"event-portal/core/utils"
	"event-portal/modules/event/dto"
	"event-portal/modules/event/service"
	"event-portal/modules/event/validator"

	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
	now          func() time.Time
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
		now:            time.Now,
	}
}

func (controller *EventController) eventID(c echo.Context, name string) (int64, error) {
	id, ok := utils.ToInt64(c.Param(name))
	if !ok {
		return 0, controller.BadRequest(errors.ErrInvalidInput, "Invalid "+name)
	}
	return id, nil
}

// PublicListEvents lists events by status with search and pagination
// @Summary List events
// @Description Lists events by status with search and pagination
// @Tags Event
// @Produce json
// @Param status query string false "active, completed, cancelled or all"
// @Param search query string false "Search text"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.EventListResponse
// @Failure 502 {object} errors.AppError
// @Router /events [get]
func (controller *EventController) PublicListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)
	events, err := controller.EventService.ListEvents(ctx, middleware.GetSession(c), queryParams)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, events, "get events success")
}

// PublicGetEvent returns the event with its join eligibility for the current session
// @Summary Get event
// @Description Returns the event with its join eligibility for the current session
// @Tags Event
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.EventDetailResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /events/{id} [get]
func (controller *EventController) PublicGetEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, errID := controller.eventID(c, "id")
	if errID != nil {
		return errID
	}
	detail, err := controller.EventService.GetEventDetail(ctx, middleware.GetSession(c), id)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, detail, "get event success")
}

// PrivateCreateEvent creates an event from JSON or multipart with files and fileTypes
// @Summary Create event
// @Description Creates an event from JSON or multipart with files and fileTypes
// @Tags Event
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param request body dto.EventRequest true "Event data"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /events [post]
func (controller *EventController) PrivateCreateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	requestData, files, errBind := bindEventRequest(c)
	if errBind != nil {
		logger.Warn("EventController:PrivateCreateEvent:Bind", "error", errBind)
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateEventRequest(requestData, len(files), true, controller.now())
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	event, err := controller.EventService.CreateEvent(ctx, middleware.GetSession(c), requestData, files)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.CreatedResponse(c, event, "Event created successfully!")
}

// PrivateUpdateEvent updates an event with the same input rules as create
// @Summary Update event
// @Description Updates an event with the same input rules as create
// @Tags Event
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Event ID"
// @Param request body dto.EventRequest true "Event data"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /events/{id} [patch]
func (controller *EventController) PrivateUpdateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, errID := controller.eventID(c, "id")
	if errID != nil {
		return errID
	}

	requestData, files, errBind := bindEventRequest(c)
	if errBind != nil {
		logger.Warn("EventController:PrivateUpdateEvent:Bind", "error", errBind)
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateEventRequest(requestData, len(files), false, controller.now())
	if validationResult.HasError() {
		return controller.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	event, err := controller.EventService.UpdateEvent(ctx, middleware.GetSession(c), id, requestData, files)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, event, "Event updated successfully!")
}

// PrivateDeleteEvent deletes an event
// @Summary Delete event
// @Description Deletes an event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /events/{id} [delete]
func (controller *EventController) PrivateDeleteEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, errID := controller.eventID(c, "id")
	if errID != nil {
		return errID
	}
	if err := controller.EventService.DeleteEvent(ctx, middleware.GetSession(c), id); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "Event deleted")
}

// PrivateJoinEvent joins an event after the eligibility check and records the participation in the session
// @Summary Join event
// @Description Joins an event after the eligibility check and records the participation in the session
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body dto.JoinRequest true "Join answers"
// @Success 200 {object} dto.JoinResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /events/{id}/join [post]
func (controller *EventController) PrivateJoinEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, errID := controller.eventID(c, "id")
	if errID != nil {
		return errID
	}

	requestData := new(dto.JoinRequest)
	if err := c.Bind(requestData); err != nil {
		return controller.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	joined, err := controller.EventService.JoinEvent(ctx, middleware.GetSession(c), id, requestData)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}

	message := "You have successfully joined the event"
	if joined.Detail.Event.RequiresApproval {
		message = "Your request has been submitted and is pending approval"
	}
	return controller.SuccessResponse(c, joined, message)
}

// PrivateListParticipants lists the participants of an event
// @Summary List participants
// @Description Lists the participants of an event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} []dto.ParticipantResponse
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /events/{id}/participants [get]
func (controller *EventController) PrivateListParticipants(c echo.Context) error {
	ctx := c.Request().Context()

	id, errID := controller.eventID(c, "id")
	if errID != nil {
		return errID
	}
	participants, err := controller.EventService.ListParticipants(ctx, middleware.GetSession(c), id)
	if err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, participants, "get participants success")
}

// PrivateApproveParticipant approves a pending participation and queues a company refresh
// @Summary Approve participant
// @Description Approves a pending participation and queues a company refresh
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Param pid path int true "Participation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/participants/{pid}/approve [post]
func (controller *EventController) PrivateApproveParticipant(c echo.Context) error {
	ctx := c.Request().Context()

	eventID, errID := controller.eventID(c, "id")
	if errID != nil {
		return errID
	}
	participationID, errID := controller.eventID(c, "pid")
	if errID != nil {
		return errID
	}
	if err := controller.EventService.ApproveParticipant(ctx, middleware.GetSession(c), eventID, participationID); err != nil {
		return controller.ErrorResponse(c, err)
	}
	return controller.SuccessResponse(c, nil, "Participant approved")
}
