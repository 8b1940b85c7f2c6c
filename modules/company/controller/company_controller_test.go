package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"event-portal/core/backend"
	"event-portal/core/errors"
	"event-portal/core/middleware"
	"event-portal/modules/company/dto"
	"event-portal/modules/company/service"
	"event-portal/modules/session/entity"

	"github.com/labstack/echo/v4"
)

type stubCompanies struct {
	service.CompanyServiceInterface

	company   *dto.CompanyResponse
	err       *errors.AppError
	created   *dto.CompanyRequest
	invited   *dto.InviteRequest
	removedID int64
}

func (s *stubCompanies) CreateCompany(ctx context.Context, sess entity.Session, req *dto.CompanyRequest) (*dto.CompanyResponse, *errors.AppError) {
	s.created = req
	if s.err != nil {
		return nil, s.err
	}
	return s.company, nil
}

func (s *stubCompanies) GetCompany(ctx context.Context, sess entity.Session) (*dto.CompanyResponse, *errors.AppError) {
	if s.err != nil {
		return nil, s.err
	}
	return s.company, nil
}

func (s *stubCompanies) InviteOrganizer(ctx context.Context, sess entity.Session, req *dto.InviteRequest) *errors.AppError {
	s.invited = req
	return s.err
}

func (s *stubCompanies) RemoveMember(ctx context.Context, sess entity.Session, userID int64) *errors.AppError {
	s.removedID = userID
	return s.err
}

func adminSession() entity.Session {
	return entity.Session{Hydrated: true, User: &backend.User{ID: 1, Email: "ana@example.com", Role: backend.RoleAdmin}, Token: "api-token"}
}

func serve(t *testing.T, h echo.HandlerFunc, req *http.Request, sess entity.Session, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names, values = append(names, params[i]), append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	middleware.SetSession(c, sess)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestCreateCompany(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		svc         *stubCompanies
		wantStatus  int
		wantText    string
		wantCreated bool
	}{
		{
			name:        "created",
			body:        `{"name":"Wizard Productions","description":"We run conferences."}`,
			svc:         &stubCompanies{company: &dto.CompanyResponse{ID: 7, Name: "Wizard Productions"}},
			wantStatus:  http.StatusCreated,
			wantText:    "Company created successfully!",
			wantCreated: true,
		},
		{
			name:       "invalid form",
			body:       `{"name":"W","description":"short"}`,
			svc:        &stubCompanies{},
			wantStatus: http.StatusBadRequest,
			wantText:   "Company name must be at least 2 characters",
		},
		{
			name:        "backend refusal",
			body:        `{"name":"Wizard Productions","description":"We run conferences."}`,
			svc:         &stubCompanies{err: errors.NewAppError(errors.ErrAlreadyExists, "Company already exists", nil)},
			wantStatus:  http.StatusConflict,
			wantText:    "Company already exists",
			wantCreated: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := serve(t, NewCompanyController(tt.svc).PrivateCreateCompany, jsonRequest(http.MethodPost, "/api/v1/company", tt.body), adminSession())
			if rec.Code != tt.wantStatus || !strings.Contains(rec.Body.String(), tt.wantText) {
				t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
			}
			if (tt.svc.created != nil) != tt.wantCreated {
				t.Fatalf("service called = %v, want %v", tt.svc.created != nil, tt.wantCreated)
			}
		})
	}
}

func TestGetCompanyEnvelope(t *testing.T) {
	t.Parallel()

	svc := &stubCompanies{company: &dto.CompanyResponse{ID: 7, Name: "Gophers", EventCount: 2}}
	rec := serve(t, NewCompanyController(svc).PrivateGetCompany, httptest.NewRequest(http.MethodGet, "/api/v1/company", nil), adminSession())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
	var body struct {
		Data dto.CompanyResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.ID != 7 || body.Data.EventCount != 2 {
		t.Fatalf("data = %+v", body.Data)
	}
}

func TestInviteOrganizerDefaultsRole(t *testing.T) {
	t.Parallel()

	svc := &stubCompanies{}
	rec := serve(t, NewCompanyController(svc).PrivateInviteOrganizer, jsonRequest(http.MethodPost, "/api/v1/company/invite-organizer", `{"email":"bo@example.com"}`), adminSession())
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Invitation sent to bo@example.com") {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
	if svc.invited == nil || svc.invited.Role != backend.RoleOrganizer {
		t.Fatalf("invited = %+v", svc.invited)
	}
}

func TestRemoveMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		userID     string
		svcErr     *errors.AppError
		wantStatus int
		wantID     int64
	}{
		{"removed", "12", nil, http.StatusOK, 12},
		{"bad id", "twelve", nil, http.StatusBadRequest, 0},
		{"forbidden", "12", errors.NewAppError(errors.ErrForbidden, "Only the owner can remove members", nil), http.StatusForbidden, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubCompanies{err: tt.svcErr}
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/company/members/"+tt.userID, nil)
			rec := serve(t, NewCompanyController(svc).PrivateRemoveMember, req, adminSession(), "userId", tt.userID)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
			}
			if svc.removedID != tt.wantID {
				t.Fatalf("removed = %d, want %d", svc.removedID, tt.wantID)
			}
		})
	}
}
