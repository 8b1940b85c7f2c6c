package dto

import "event-portal/core/backend"

const (
	PurposeLogin  = "LOGIN"
	PurposeSignup = "SIGNUP"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SendOTPRequest struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

// VerifyOTPRequest carries role and name only for sign-ups.
type VerifyOTPRequest struct {
	Email   string       `json:"email"`
	Code    string       `json:"code"`
	Purpose string       `json:"purpose"`
	Role    backend.Role `json:"role,omitempty"`
	Name    string       `json:"name,omitempty"`
}

type RequestResetRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type SessionUser struct {
	ID        int64        `json:"id"`
	Email     string       `json:"email"`
	Name      string       `json:"name,omitempty"`
	Role      backend.Role `json:"role"`
	CompanyID *int64       `json:"companyId,omitempty"`
}

// SessionResponse is returned after a sign-in. Token is the portal session token, never the API token.
type SessionResponse struct {
	Token    string      `json:"token"`
	User     SessionUser `json:"user"`
	Redirect string      `json:"redirect"`
}

type PageResponse struct {
	Page     string       `json:"page"`
	SignedIn bool         `json:"signedIn"`
	Role     backend.Role `json:"role,omitempty"`
	Links    []PageLink   `json:"links,omitempty"`
}

type PageLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

func ToSessionUser(u *backend.User) SessionUser {
	return SessionUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CompanyID: u.CompanyID}
}
