package validator

import (
	"testing"

	"event-portal/core/backend"
	"event-portal/modules/auth/dto"
)

func TestValidateLoginRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  dto.LoginRequest
		want map[string]string
	}{
		{"valid", dto.LoginRequest{Email: "ana@example.com", Password: "secret1"}, nil},
		{"empty", dto.LoginRequest{}, map[string]string{"email": "Email is required", "password": "Password is required"}},
		{"bad email short password", dto.LoginRequest{Email: "ana", Password: "123"}, map[string]string{"email": "Invalid email", "password": "Password must be 6+ chars"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := ValidateLoginRequest(&tt.req)
			if len(res.Errors) != len(tt.want) {
				t.Fatalf("errors = %+v, want %v", res.Errors, tt.want)
			}
			for _, fe := range res.Errors {
				if tt.want[fe.Field] != fe.Message {
					t.Fatalf("%s = %q, want %q", fe.Field, fe.Message, tt.want[fe.Field])
				}
			}
		})
	}
}

func TestValidateSendOTPRequestDefaultsPurpose(t *testing.T) {
	t.Parallel()

	req := &dto.SendOTPRequest{Email: "ana@example.com"}
	if res := ValidateSendOTPRequest(req); res.HasError() {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}
	if req.Purpose != dto.PurposeLogin {
		t.Fatalf("purpose = %q, want LOGIN", req.Purpose)
	}

	bad := &dto.SendOTPRequest{Email: "ana@example.com", Purpose: "other"}
	if res := ValidateSendOTPRequest(bad); len(res.Errors) != 1 || res.Errors[0].Field != "purpose" {
		t.Fatalf("errors = %+v", res.Errors)
	}
}

func TestValidateVerifyOTPRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    dto.VerifyOTPRequest
		fields []string
	}{
		{"login", dto.VerifyOTPRequest{Email: "ana@example.com", Code: "123456"}, nil},
		{"wrong length", dto.VerifyOTPRequest{Email: "ana@example.com", Code: "123"}, []string{"code"}},
		{"signup", dto.VerifyOTPRequest{Email: "ana@example.com", Code: "123456", Purpose: "SIGNUP", Role: backend.RoleOrganizer, Name: "Ana"}, nil},
		{"signup missing role and name", dto.VerifyOTPRequest{Email: "ana@example.com", Code: "123456", Purpose: "SIGNUP"}, []string{"role", "name"}},
		{"signup admin refused", dto.VerifyOTPRequest{Email: "ana@example.com", Code: "123456", Purpose: "SIGNUP", Role: backend.RoleAdmin, Name: "Ana"}, []string{"role"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := ValidateVerifyOTPRequest(&tt.req)
			if len(res.Errors) != len(tt.fields) {
				t.Fatalf("errors = %+v, want fields %v", res.Errors, tt.fields)
			}
			for i, f := range tt.fields {
				if res.Errors[i].Field != f {
					t.Fatalf("error %d field = %s, want %s", i, res.Errors[i].Field, f)
				}
			}
		})
	}
}

func TestValidateVerifyOTPRequestDropsSignupFieldsOnLogin(t *testing.T) {
	t.Parallel()

	req := &dto.VerifyOTPRequest{Email: "ana@example.com", Code: "123456", Role: backend.RoleAdmin, Name: "Ana"}
	ValidateVerifyOTPRequest(req)
	if req.Role != "" || req.Name != "" {
		t.Fatalf("role/name = %q/%q, want empty for LOGIN", req.Role, req.Name)
	}
}

func TestValidateResetPasswordRequest(t *testing.T) {
	t.Parallel()

	res := ValidateResetPasswordRequest(&dto.ResetPasswordRequest{NewPassword: "abc"})
	if len(res.Errors) != 2 || res.Errors[0].Field != "token" || res.Errors[1].Message != "Password must be 6+ chars" {
		t.Fatalf("errors = %+v", res.Errors)
	}
}
