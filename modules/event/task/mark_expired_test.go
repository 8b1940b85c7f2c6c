package task

import (
	"context"
	"testing"

	"event-portal/core/constants"
	"event-portal/core/errors"
	"event-portal/core/queue"
	"event-portal/modules/event/service"
)

type stubEvents struct {
	service.EventServiceInterface

	tokens []string
	err    *errors.AppError
}

func (s *stubEvents) MarkExpired(ctx context.Context, token string) *errors.AppError {
	s.tokens = append(s.tokens, token)
	return s.err
}

func TestMarkExpiredHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		payload []byte
	}{
		{"service token", "svc-token", nil},
		{"anonymous", "", nil},
		{"payload is ignored", "", []byte(`{"token":"visitor"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			events := &stubEvents{}
			err := NewMarkExpiredHandler(events, tt.token).Handle(context.Background(), queue.Task{Type: constants.TaskMarkExpired, Payload: tt.payload})
			if err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if len(events.tokens) != 1 || events.tokens[0] != tt.token {
				t.Fatalf("tokens = %v, want [%q]", events.tokens, tt.token)
			}
		})
	}
}

func TestMarkExpiredHandlerSurfacesAPIError(t *testing.T) {
	t.Parallel()

	failing := &stubEvents{err: errors.NewAppError(errors.ErrBackendUnavailable, "down", nil)}
	if err := NewMarkExpiredHandler(failing, "").Handle(context.Background(), queue.Task{Type: constants.TaskMarkExpired}); err == nil {
		t.Fatal("expected the API error to surface")
	}
}
