package validator

import (
	"strings"
	"testing"

	"event-portal/core/backend"
	"event-portal/modules/company/dto"
)

func TestValidateCompanyRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		req   dto.CompanyRequest
		field string
		msg   string
	}{
		{"valid", dto.CompanyRequest{Name: "Wizard Productions", Description: "We run conferences."}, "", ""},
		{"missing name", dto.CompanyRequest{Description: "We run conferences."}, "name", "Company name is required"},
		{"short name", dto.CompanyRequest{Name: "W", Description: "We run conferences."}, "name", "Company name must be at least 2 characters"},
		{"long name", dto.CompanyRequest{Name: strings.Repeat("w", 101), Description: "We run conferences."}, "name", "Company name must be less than 100 characters"},
		{"short description", dto.CompanyRequest{Name: "Wizard", Description: "Events"}, "description", "Description must be at least 10 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := ValidateCompanyRequest(&tt.req)
			if tt.field == "" {
				if res.HasError() {
					t.Fatalf("unexpected errors: %+v", res.Errors)
				}
				return
			}
			if len(res.Errors) != 1 || res.Errors[0].Field != tt.field || res.Errors[0].Message != tt.msg {
				t.Fatalf("errors = %+v, want %s: %s", res.Errors, tt.field, tt.msg)
			}
		})
	}
}

func TestValidateInviteRequest(t *testing.T) {
	t.Parallel()

	req := &dto.InviteRequest{Email: "team@example.com"}
	if res := ValidateInviteRequest(req); res.HasError() {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}
	if req.Role != backend.RoleOrganizer {
		t.Fatalf("role = %q, want ORGANIZER by default", req.Role)
	}

	bad := &dto.InviteRequest{Email: "nope", Role: backend.RoleParticipant}
	if res := ValidateInviteRequest(bad); len(res.Errors) != 2 {
		t.Fatalf("errors = %+v, want email and role", res.Errors)
	}
}
