package validator

import (
	"testing"
	"time"

	"event-portal/core/backend"
	"event-portal/modules/event/dto"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func validRequest() *dto.EventRequest {
	start := now.Add(48 * time.Hour)
	end := start.Add(2 * time.Hour)
	return &dto.EventRequest{
		Title:       ptr("Go Meetup"),
		Description: ptr("An evening of talks about Go."),
		Type:        ptr(backend.EventTypeOnsite),
		Status:      ptr(backend.EventStatusActive),
		Category:    ptr(backend.CategorySeminar),
		Venue:       ptr("Main Hall"),
		ContactInfo: ptr("hello@example.com"),
		TotalSeats:  ptr(50),
		StartDate:   &start,
		EndDate:     &end,
	}
}

func fields(t *testing.T, req *dto.EventRequest, uploads int, creating bool) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, e := range ValidateEventRequest(req, uploads, creating, now).Errors {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateEventRequestValid(t *testing.T) {
	t.Parallel()

	if got := fields(t, validRequest(), 1, true); len(got) != 0 {
		t.Fatalf("unexpected errors: %v", got)
	}
}

func TestValidateEventRequestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*dto.EventRequest)
		uploads int
		create  bool
		field   string
		message string
	}{
		{"short title", func(r *dto.EventRequest) { r.Title = ptr("Go") }, 1, true, "title", "Title is too short"},
		{"missing description", func(r *dto.EventRequest) { r.Description = nil }, 1, true, "description", "Description is required"},
		{"short description", func(r *dto.EventRequest) { r.Description = ptr("short") }, 1, true, "description", "Please add more details"},
		{"onsite without venue", func(r *dto.EventRequest) { r.Venue = ptr(" ") }, 1, true, "venue", "Venue is required for onsite events"},
		{"online without link", func(r *dto.EventRequest) { r.Type = ptr(backend.EventTypeOnline) }, 1, true, "joinLink", "Join Link is required for online events"},
		{"online with bad link", func(r *dto.EventRequest) {
			r.Type = ptr(backend.EventTypeOnline)
			r.JoinLink = ptr("meet.example.com")
		}, 1, true, "joinLink", "Provide a valid URL (https://...)"},
		{"negative seats", func(r *dto.EventRequest) { r.TotalSeats = ptr(-1) }, 1, true, "totalSeats", "Total seats must be 0 or greater"},
		{"start in the past", func(r *dto.EventRequest) {
			start := now.Add(-48 * time.Hour)
			r.StartDate = &start
		}, 1, true, "startDate", "Start date cannot be in the past"},
		{"end before start", func(r *dto.EventRequest) {
			end := r.StartDate.Add(-time.Minute)
			r.EndDate = &end
		}, 1, true, "endDate", "End must be after start"},
		{"no attachments", func(*dto.EventRequest) {}, 0, true, "attachments", "Please add at least one file"},
		{"bad attachment type", func(r *dto.EventRequest) {
			r.ExistingAttachments = []backend.Attachment{{ID: 1, URL: "https://cdn/x.pdf", Type: "PDF"}}
		}, 1, false, "attachments", "Attachment type is required"},
		{"bad category", func(r *dto.EventRequest) { r.Category = ptr(backend.EventCategory("PARTY")) }, 1, true, "TypeOfEvent", ""},
		{"bad status", func(r *dto.EventRequest) { r.Status = ptr(backend.EventStatus("ARCHIVED")) }, 1, true, "status", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRequest()
			tt.mutate(req)
			got := fields(t, req, tt.uploads, tt.create)
			msg, ok := got[tt.field]
			if !ok {
				t.Fatalf("no error on %s: %v", tt.field, got)
			}
			if tt.message != "" && msg != tt.message {
				t.Fatalf("%s = %q, want %q", tt.field, msg, tt.message)
			}
		})
	}
}

func TestValidateEventRequestEditingPastEvent(t *testing.T) {
	t.Parallel()

	req := validRequest()
	start := now.Add(-48 * time.Hour)
	end := start.Add(time.Hour)
	req.StartDate, req.EndDate = &start, &end
	req.ExistingAttachments = []backend.Attachment{{ID: 3, URL: "https://cdn/cover.png", Type: backend.AttachmentImage}}

	if got := fields(t, req, 0, false); len(got) != 0 {
		t.Fatalf("unexpected errors when editing: %v", got)
	}
}

func TestValidateEventRequestJoinQuestionsLength(t *testing.T) {
	t.Parallel()

	req := validRequest()
	long := make([]byte, maxJoinQuestionsLength+1)
	for i := range long {
		long[i] = 'q'
	}
	req.JoinQuestions = []string{string(long)}

	if got := fields(t, req, 1, true)["joinQuestions"]; got != "Too long" {
		t.Fatalf("joinQuestions = %q, want Too long", got)
	}
}
