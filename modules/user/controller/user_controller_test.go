package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"event-portal/core/backend"
	"event-portal/core/errors"
	"event-portal/core/middleware"
	"event-portal/modules/session/entity"
	"event-portal/modules/user/dto"
	"event-portal/modules/user/service"

	"github.com/labstack/echo/v4"
)

type stubUsers struct {
	service.UserServiceInterface

	err     *errors.AppError
	renamed string
	changed bool
	deleted bool
}

func (s *stubUsers) UpdateMe(ctx context.Context, sess entity.Session, req *dto.UpdateMeRequest) (*dto.UserResponse, *errors.AppError) {
	s.renamed = req.Name
	if s.err != nil {
		return nil, s.err
	}
	return &dto.UserResponse{ID: sess.User.ID, Email: sess.User.Email, Name: req.Name, Role: sess.User.Role}, nil
}

func (s *stubUsers) ChangePassword(ctx context.Context, sess entity.Session, req *dto.ChangePasswordRequest) *errors.AppError {
	s.changed = true
	return s.err
}

func (s *stubUsers) DeleteMe(ctx context.Context, sess entity.Session) *errors.AppError {
	s.deleted = true
	return s.err
}

type recordingCookies struct {
	cleared int
}

func (r *recordingCookies) SetSessionCookie(c echo.Context, token string) {}
func (r *recordingCookies) ClearSessionCookie(c echo.Context)             { r.cleared++ }

func serve(t *testing.T, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetSession(c, entity.Session{
		Hydrated: true,
		User:     &backend.User{ID: 3, Email: "ana@example.com", Role: backend.RoleParticipant},
		Token:    "api-token",
	})
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

func TestUpdateMe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantText    string
		wantRenamed string
	}{
		{"renamed", `{"name":"Ana Lima"}`, http.StatusOK, `"name":"Ana Lima"`, "Ana Lima"},
		{"blank name", `{"name":"  "}`, http.StatusBadRequest, "Name is required", ""},
		{"short name", `{"name":"A"}`, http.StatusBadRequest, "Name is too short", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubUsers{}
			rec := serve(t, NewUserController(svc, &recordingCookies{}).PrivateUpdateMe, jsonRequest(http.MethodPatch, "/api/v1/users/me", tt.body))
			if rec.Code != tt.wantStatus || !strings.Contains(rec.Body.String(), tt.wantText) {
				t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
			}
			if svc.renamed != tt.wantRenamed {
				t.Fatalf("renamed = %q, want %q", svc.renamed, tt.wantRenamed)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		svcErr      *errors.AppError
		wantStatus  int
		wantText    string
		wantChanged bool
	}{
		{"changed", `{"oldPassword":"secret1","newPassword":"secret2","confirmPassword":"secret2"}`, nil, http.StatusOK, "Password changed", true},
		{"mismatch", `{"oldPassword":"secret1","newPassword":"secret2","confirmPassword":"secret3"}`, nil, http.StatusBadRequest, "Passwords do not match", false},
		{"too short", `{"oldPassword":"secret1","newPassword":"abc","confirmPassword":"abc"}`, nil, http.StatusBadRequest, "Password must be 6+ chars", false},
		{"wrong current password", `{"oldPassword":"nope12","newPassword":"secret2","confirmPassword":"secret2"}`, errors.NewAppError(errors.ErrInvalidInput, "Current password is incorrect", nil), http.StatusBadRequest, "Current password is incorrect", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubUsers{err: tt.svcErr}
			rec := serve(t, NewUserController(svc, &recordingCookies{}).PrivateChangePassword, jsonRequest(http.MethodPost, "/api/v1/users/me/change-password", tt.body))
			if rec.Code != tt.wantStatus || !strings.Contains(rec.Body.String(), tt.wantText) {
				t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
			}
			if svc.changed != tt.wantChanged {
				t.Fatalf("service called = %v, want %v", svc.changed, tt.wantChanged)
			}
		})
	}
}

func TestDeleteMeClearsCookie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		svcErr      *errors.AppError
		wantStatus  int
		wantCleared int
	}{
		{"deleted", nil, http.StatusOK, 1},
		{"backend failure", errors.NewAppError(errors.ErrBackendUnavailable, "Backend unavailable", nil), http.StatusBadGateway, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubUsers{err: tt.svcErr}
			cookies := &recordingCookies{}
			rec := serve(t, NewUserController(svc, cookies).PrivateDeleteMe, httptest.NewRequest(http.MethodDelete, "/api/v1/users/me", nil))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
			}
			if !svc.deleted || cookies.cleared != tt.wantCleared {
				t.Fatalf("deleted = %v cleared = %d", svc.deleted, cookies.cleared)
			}
		})
	}
}
