package service

import (
	"testing"

	"event-portal/core/backend"
	"event-portal/modules/session/entity"
)

func int64p(v int64) *int64 { return &v }

func TestResolveAccess(t *testing.T) {
	t.Parallel()

	participant := &backend.User{ID: 1, Role: backend.RoleParticipant}
	admin := &backend.User{ID: 2, Role: backend.RoleAdmin, CompanyID: int64p(3)}
	adminNoCompany := &backend.User{ID: 3, Role: backend.RoleAdmin}
	organizerZero := &backend.User{ID: 4, Role: backend.RoleOrganizer, CompanyID: int64p(0)}
	stranger := &backend.User{ID: 5, Role: "GUEST"}

	tests := []struct {
		name string
		path string
		user *backend.User
		want Decision
	}{
		{"home is public", "/", nil, Allow()},
		{"event list is public", "/events", nil, Allow()},
		{"event detail is public", "/events/42", nil, Allow()},
		{"event list with query", "/events?status=active", nil, Allow()},
		{"eventsfoo is not events", "/eventsfoo", nil, Redirect("/auth/login")},

		{"login without user", "/auth/login", nil, Allow()},
		{"participant on login", "/auth/login", participant, Redirect("/participant/dashboard")},
		{"admin on login", "/auth/login", admin, Redirect("/admin/dashboard")},
		{"organizer on signup", "/auth/otp/signup", organizerZero, Redirect("/admin/dashboard")},
		{"unknown role on auth falls through", "/auth/login", stranger, Allow()},

		{"anonymous on dashboard", "/participant/dashboard", nil, Redirect("/auth/login")},
		{"anonymous on unknown page", "/profile", nil, Redirect("/auth/login")},

		{"participant on admin", "/admin/dashboard", participant, Redirect("/unauthorized")},
		{"participant on admin subpage", "/admin/profile", participant, Redirect("/unauthorized")},
		{"admin on participant", "/participant/dashboard", admin, Redirect("/unauthorized")},
		{"participant on own dashboard", "/participant/dashboard/", participant, Allow()},
		{"admin on admin", "/admin/dashboard", admin, Allow()},

		{"admin without company onboards", "/onboarding", adminNoCompany, Allow()},
		{"zero company counts as none", "/onboarding", organizerZero, Allow()},
		{"admin with company skips onboarding", "/onboarding", admin, Redirect("/admin/dashboard")},
		{"participant on onboarding", "/onboarding", participant, Redirect("/unauthorized")},
		{"stranger on onboarding", "/onboarding", stranger, Redirect("/unauthorized")},

		{"signed in elsewhere", "/unauthorized", participant, Allow()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveAccess(tt.path, tt.user); got != tt.want {
				t.Fatalf("ResolveAccess(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestEvaluateWaitsForHydration(t *testing.T) {
	t.Parallel()

	user := &backend.User{ID: 1, Role: backend.RoleParticipant}

	if got := Evaluate(entity.Session{User: user}, "/admin/dashboard"); got.Kind != KindPending {
		t.Fatalf("unhydrated = %+v, want pending", got)
	}
	if got := Evaluate(entity.Session{Hydrated: true, User: user}, "/admin/dashboard"); got != Redirect("/unauthorized") {
		t.Fatalf("hydrated = %+v, want redirect /unauthorized", got)
	}
	if got := Evaluate(entity.Session{}, "/"); got.Kind != KindPending {
		t.Fatalf("public page before hydration = %+v, want pending", got)
	}
}
