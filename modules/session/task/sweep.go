package task

import (
	"context"
	"time"

	"event-portal/core/constants"
	"event-portal/core/logger"
	"event-portal/core/queue"
)

type Sweeper interface {
	Sweep(ctx context.Context, before time.Time) (int, error)
}

type SweepHandler struct {
	sessions Sweeper
	now      func() time.Time
}

func NewSweepHandler(sessions Sweeper) *SweepHandler {
	return &SweepHandler{sessions: sessions, now: time.Now}
}

// Handle removes snapshots left behind by sessions that expired in redis.
func (h *SweepHandler) Handle(ctx context.Context, t queue.Task) error {
	removed, err := h.sessions.Sweep(ctx, h.now().Add(-constants.SessionSweepAge))
	if err != nil {
		logger.Error("SweepHandler:Handle:Sweep", "removed", removed, "error", err)
		return err
	}
	return nil
}
