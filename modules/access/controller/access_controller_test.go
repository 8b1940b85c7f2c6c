package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-portal/core/backend"
	"event-portal/core/middleware"
	"event-portal/modules/session/entity"

	"github.com/labstack/echo/v4"
)

func serve(t *testing.T, sess entity.Session, path string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	middleware.SetSession(c, sess)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestGuard(t *testing.T) {
	t.Parallel()

	ok := func(c echo.Context) error { return c.String(http.StatusOK, "page") }
	guard := NewAccessController().Guard()(ok)
	participant := &backend.User{ID: 1, Role: backend.RoleParticipant}

	tests := []struct {
		name         string
		sess         entity.Session
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"loading", entity.Session{}, "/admin/dashboard", http.StatusServiceUnavailable, ""},
		{"redirect anonymous", entity.Session{Hydrated: true}, "/participant/dashboard", http.StatusFound, "/auth/login"},
		{"redirect wrong role", entity.Session{Hydrated: true, User: participant}, "/admin/dashboard", http.StatusFound, "/unauthorized"},
		{"allow", entity.Session{Hydrated: true, User: participant}, "/participant/dashboard", http.StatusOK, ""},
		{"public", entity.Session{Hydrated: true}, "/events/3", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.sess, tt.path, guard)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if loc := rec.Header().Get(echo.HeaderLocation); loc != tt.wantLocation {
				t.Fatalf("location = %q, want %q", loc, tt.wantLocation)
			}
			if tt.wantStatus == http.StatusServiceUnavailable && rec.Header().Get("Retry-After") == "" {
				t.Fatal("missing Retry-After")
			}
		})
	}
}

func TestResolveEndpoint(t *testing.T) {
	t.Parallel()

	admin := &backend.User{ID: 2, Role: backend.RoleAdmin}
	rec := serve(t, entity.Session{Hydrated: true, User: admin}, "/api/v1/access/resolve?path=/auth/login", NewAccessController().Resolve)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Data struct {
			Kind   string `json:"kind"`
			Target string `json:"target"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Kind != "redirect" || body.Data.Target != "/admin/dashboard" {
		t.Fatalf("decision = %+v", body.Data)
	}

	missing := serve(t, entity.Session{Hydrated: true}, "/api/v1/access/resolve", NewAccessController().Resolve)
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("missing path status = %d, want 400", missing.Code)
	}
}
