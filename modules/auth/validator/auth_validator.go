package validator

import (
	"strings"

	"event-portal/core/backend"
	corevalidator "event-portal/core/validator"
	"event-portal/modules/auth/dto"
)

const (
	minPasswordLength = 6
	otpLength         = 6
)

func email(v *corevalidator.ValidationResult, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add("email", "Email is required")
		return
	}
	if !corevalidator.IsEmail(value) {
		v.Add("email", "Invalid email")
	}
}

func password(v *corevalidator.ValidationResult, field, value, requiredMsg string) {
	switch {
	case value == "":
		v.Add(field, requiredMsg)
	case len(value) < minPasswordLength:
		v.Add(field, "Password must be 6+ chars")
	}
}

func ValidateLoginRequest(req *dto.LoginRequest) *corevalidator.ValidationResult {
	v := corevalidator.New()
	email(v, req.Email)
	password(v, "password", req.Password, "Password is required")
	return v
}

// ValidateSendOTPRequest defaults the purpose to LOGIN.
func ValidateSendOTPRequest(req *dto.SendOTPRequest) *corevalidator.ValidationResult {
	v := corevalidator.New()
	email(v, req.Email)
	req.Purpose = strings.ToUpper(strings.TrimSpace(req.Purpose))
	if req.Purpose == "" {
		req.Purpose = dto.PurposeLogin
	}
	v.OneOf("purpose", req.Purpose, dto.PurposeLogin, dto.PurposeSignup)
	return v
}

func ValidateVerifyOTPRequest(req *dto.VerifyOTPRequest) *corevalidator.ValidationResult {
	v := corevalidator.New()
	email(v, req.Email)

	code := strings.TrimSpace(req.Code)
	switch {
	case code == "":
		v.Add("code", "OTP is required")
	case len(code) != otpLength:
		v.Add("code", "Enter 6 digit OTP")
	}

	if strings.ToUpper(req.Purpose) != dto.PurposeSignup {
		// role and name only make sense when the account is created
		req.Role, req.Name = "", ""
		return v
	}
	if req.Role != backend.RoleParticipant && req.Role != backend.RoleOrganizer {
		v.Add("role", "Select a role")
	}
	switch n := len([]rune(strings.TrimSpace(req.Name))); {
	case n == 0:
		v.Add("name", "Name is required")
	case n < 2:
		v.Add("name", "Name is too short")
	}
	return v
}

func ValidateRequestResetRequest(req *dto.RequestResetRequest) *corevalidator.ValidationResult {
	v := corevalidator.New()
	email(v, req.Email)
	return v
}

func ValidateResetPasswordRequest(req *dto.ResetPasswordRequest) *corevalidator.ValidationResult {
	v := corevalidator.New()
	if strings.TrimSpace(req.Token) == "" {
		v.Add("token", "Reset token is missing")
	}
	password(v, "newPassword", req.NewPassword, "New password is required")
	return v
}
