package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"event-portal/core/backend"
	"event-portal/core/errors"
	"event-portal/core/middleware"
	"event-portal/modules/event/dto"
	"event-portal/modules/event/service"
	"event-portal/modules/session/entity"

	"github.com/labstack/echo/v4"
)

type stubService struct {
	service.EventServiceInterface

	created *dto.EventRequest
	files   []dto.UploadFile
	joinErr *errors.AppError
	joined  *dto.JoinResponse
}

func (s *stubService) CreateEvent(ctx context.Context, sess entity.Session, req *dto.EventRequest, files []dto.UploadFile) (*dto.EventResponse, *errors.AppError) {
	s.created, s.files = req, files
	return &dto.EventResponse{ID: 1, Title: *req.Title}, nil
}

func (s *stubService) JoinEvent(ctx context.Context, sess entity.Session, id int64, req *dto.JoinRequest) (*dto.JoinResponse, *errors.AppError) {
	if s.joinErr != nil {
		return nil, s.joinErr
	}
	return s.joined, nil
}

func newController(svc service.EventServiceInterface) *EventController {
	ctrl := NewEventController(svc)
	ctrl.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	return ctrl
}

func run(t *testing.T, req *http.Request, h echo.HandlerFunc, names []string, values []string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	middleware.SetSession(c, entity.Session{Hydrated: true, User: &backend.User{ID: 1, Role: backend.RoleOrganizer}})
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func multipartEvent(t *testing.T, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	for name, kind := range files {
		part, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		part.Write([]byte("data"))
		w.WriteField("fileTypes", kind)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func validFields() map[string]string {
	return map[string]string{
		"title":            "Go Meetup",
		"description":      "An evening of talks about Go.",
		"type":             "ONSITE",
		"TypeOfEvent":      `"SEMINAR"`,
		"status":           "ACTIVE",
		"venue":            "Main Hall",
		"contactInfo":      "hello@example.com",
		"totalSeats":       "40",
		"requiresApproval": "true",
		"startDate":        "2026-06-01T18:00:00.000Z",
		"endDate":          "2026-06-01T20:00:00.000Z",
		"joinQuestions":    `["Why?","Level"]`,
	}
}

func TestCreateEventMultipart(t *testing.T) {
	t.Parallel()

	svc := &stubService{}
	req := multipartEvent(t, validFields(), map[string]string{"cover.png": "IMAGE"})
	rec := run(t, req, newController(svc).PrivateCreateEvent, nil, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	got := svc.created
	if *got.Category != backend.CategorySeminar {
		t.Fatalf("category = %q, quoted values should be unquoted", *got.Category)
	}
	if *got.TotalSeats != 40 || !*got.RequiresApproval {
		t.Fatalf("seats/approval = %v/%v", *got.TotalSeats, *got.RequiresApproval)
	}
	if len(got.JoinQuestions) != 2 || got.JoinQuestions[1] != "Level" {
		t.Fatalf("join questions = %v", got.JoinQuestions)
	}
	if len(svc.files) != 1 || svc.files[0].Type != backend.AttachmentImage || svc.files[0].Header.Filename != "cover.png" {
		t.Fatalf("files = %+v", svc.files)
	}
}

func TestCreateEventValidationFails(t *testing.T) {
	t.Parallel()

	fields := validFields()
	fields["title"] = "Go"
	svc := &stubService{}
	rec := run(t, multipartEvent(t, fields, nil), newController(svc).PrivateCreateEvent, nil, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if svc.created != nil {
		t.Fatal("service called with an invalid form")
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Title is too short") || !strings.Contains(body, "Please add at least one file") {
		t.Fatalf("body = %s", body)
	}
}

func TestCreateEventMismatchedFileTypes(t *testing.T) {
	t.Parallel()

	fields := validFields()
	fields["fileTypes"] = "IMAGE"
	rec := run(t, multipartEvent(t, fields, nil), newController(&stubService{}).PrivateCreateEvent, nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestJoinEventMessages(t *testing.T) {
	t.Parallel()

	svc := &stubService{joined: &dto.JoinResponse{
		Participation: backend.Participation{EventID: 42, Status: backend.ParticipationPending},
		Detail:        dto.EventDetailResponse{Event: dto.EventResponse{ID: 42, RequiresApproval: true}},
	}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/42/join", strings.NewReader(`{"answers":{"db-0":"because"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := run(t, req, newController(svc).PrivateJoinEvent, []string{"id"}, []string{"42"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "Your request has been submitted and is pending approval" {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestJoinEventRefused(t *testing.T) {
	t.Parallel()

	svc := &stubService{joinErr: errors.NewAppError(errors.ErrNotEligible, "Event Full", nil)}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/42/join", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := run(t, req, newController(svc).PrivateJoinEvent, []string{"id"}, []string{"42"})

	if rec.Code != http.StatusConflict || !strings.Contains(rec.Body.String(), "Event Full") {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
}

func TestInvalidEventID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/events/abc", nil)
	rec := run(t, req, newController(&stubService{}).PublicGetEvent, []string{"id"}, []string{"abc"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestParseQuestions(t *testing.T) {
	t.Parallel()

	if got := parseQuestions(`["a","b"]`); len(got) != 2 {
		t.Fatalf("json questions = %v", got)
	}
	if got := parseQuestions("a\nb\nc"); len(got) != 3 {
		t.Fatalf("line questions = %v", got)
	}
}
