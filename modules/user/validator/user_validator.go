package validator

import (
	"strings"

	corevalidator "event-portal/core/validator"
	"event-portal/modules/user/dto"
)

const minPasswordLength = 6

func ValidateUpdateMe(req *dto.UpdateMeRequest) *corevalidator.ValidationResult {
	v := corevalidator.New()
	switch n := len([]rune(strings.TrimSpace(req.Name))); {
	case n == 0:
		v.Add("name", "Name is required")
	case n < 2:
		v.Add("name", "Name is too short")
	}
	return v
}

func ValidateChangePassword(req *dto.ChangePasswordRequest) *corevalidator.ValidationResult {
	v := corevalidator.New()
	if req.OldPassword == "" {
		v.Add("oldPassword", "Current password is required")
	}
	switch {
	case req.NewPassword == "":
		v.Add("newPassword", "New password is required")
	case len(req.NewPassword) < minPasswordLength:
		v.Add("newPassword", "Password must be 6+ chars")
	}
	if req.NewPassword != req.ConfirmPassword {
		v.Add("confirmPassword", "Passwords do not match")
	}
	return v
}
