package task

import (
	"context"
	"encoding/json"
	"fmt"

	"event-portal/core/logger"
	"event-portal/core/queue"
	"event-portal/modules/company/service"
)

type RefreshHandler struct {
	companies service.CompanyServiceInterface
}

func NewRefreshHandler(companies service.CompanyServiceInterface) *RefreshHandler {
	return &RefreshHandler{companies: companies}
}

// Handle reloads the company snapshot cached in one session.
func (h *RefreshHandler) Handle(ctx context.Context, t queue.Task) error {
	var payload service.RefreshPayload
	if err := json.Unmarshal(t.Payload, &payload); err != nil {
		return fmt.Errorf("decode %s payload: %w", t.Type, err)
	}
	if appErr := h.companies.RefreshSession(ctx, payload.SessionID, payload.CompanyID); appErr != nil {
		logger.Warn("RefreshHandler:Handle:RefreshSession", "session", payload.SessionID, "error", appErr)
		return appErr
	}
	return nil
}
