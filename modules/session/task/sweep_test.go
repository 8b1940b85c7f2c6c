package task

import (
	"context"
	"fmt"
	"testing"
	"time"

	"event-portal/core/constants"
	"event-portal/core/queue"
)

type stubSweeper struct {
	before time.Time
	err    error
}

func (s *stubSweeper) Sweep(ctx context.Context, before time.Time) (int, error) {
	s.before = before
	return 0, s.err
}

func TestSweepHandlerUsesSweepAge(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sweeper := &stubSweeper{}
	h := NewSweepHandler(sweeper)
	h.now = func() time.Time { return now }

	if err := h.Handle(context.Background(), queue.Task{Type: constants.TaskSessionSweep}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if want := now.Add(-constants.SessionSweepAge); !sweeper.before.Equal(want) {
		t.Fatalf("before = %v, want %v", sweeper.before, want)
	}
}

func TestSweepHandlerSurfacesError(t *testing.T) {
	t.Parallel()

	h := NewSweepHandler(&stubSweeper{err: fmt.Errorf("postgres down")})
	if err := h.Handle(context.Background(), queue.Task{Type: constants.TaskSessionSweep}); err == nil {
		t.Fatal("expected the sweep error")
	}
}
