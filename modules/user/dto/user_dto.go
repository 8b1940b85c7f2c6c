package dto

import "event-portal/core/backend"

type UpdateMeRequest struct {
	Name string `json:"name"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type UserResponse struct {
	ID        int64        `json:"id"`
	Email     string       `json:"email"`
	Name      string       `json:"name,omitempty"`
	Role      backend.Role `json:"role"`
	CompanyID *int64       `json:"companyId,omitempty"`
}

func ToUserResponse(u *backend.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CompanyID: u.CompanyID}
}
