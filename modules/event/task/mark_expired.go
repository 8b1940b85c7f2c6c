package task

import (
	"context"

	"event-portal/core/logger"
	"event-portal/core/queue"
	"event-portal/modules/event/service"
)

type MarkExpiredHandler struct {
	events service.EventServiceInterface
	token  string
}

// NewMarkExpiredHandler calls the API with token, or anonymously when token is empty.
// Visitor tokens never reach the queue.
func NewMarkExpiredHandler(events service.EventServiceInterface, token string) *MarkExpiredHandler {
	return &MarkExpiredHandler{events: events, token: token}
}

// Handle asks the API to close events whose end date has passed.
func (h *MarkExpiredHandler) Handle(ctx context.Context, t queue.Task) error {
	if appErr := h.events.MarkExpired(ctx, h.token); appErr != nil {
		logger.Warn("MarkExpiredHandler:Handle:MarkExpired", "error", appErr)
		return appErr
	}
	logger.Debug("MarkExpiredHandler:Handle:Done", "authenticated", h.token != "")
	return nil
}
