package validator

import (
	"strings"

	"event-portal/core/backend"
	corevalidator "event-portal/core/validator"
	"event-portal/modules/company/dto"
)

func ValidateCompanyRequest(req *dto.CompanyRequest) *corevalidator.ValidationResult {
	v := corevalidator.New()

	name := strings.TrimSpace(req.Name)
	switch n := len([]rune(name)); {
	case n == 0:
		v.Add("name", "Company name is required")
	case n < 2:
		v.Add("name", "Company name must be at least 2 characters")
	case n > 100:
		v.Add("name", "Company name must be less than 100 characters")
	}

	desc := strings.TrimSpace(req.Description)
	switch n := len([]rune(desc)); {
	case n == 0:
		v.Add("description", "Company description is required")
	case n < 10:
		v.Add("description", "Description must be at least 10 characters")
	case n > 500:
		v.Add("description", "Description must be less than 500 characters")
	}
	return v
}

// ValidateInviteRequest defaults an empty role to ORGANIZER.
func ValidateInviteRequest(req *dto.InviteRequest) *corevalidator.ValidationResult {
	v := corevalidator.New()
	if strings.TrimSpace(req.Email) == "" {
		v.Add("email", "Email is required")
	} else {
		v.Email("email", req.Email)
	}

	if req.Role == "" {
		req.Role = backend.RoleOrganizer
	}
	if req.Role != backend.RoleOrganizer && req.Role != backend.RoleAdmin {
		v.Add("role", "Please select a valid role")
	}
	return v
}
