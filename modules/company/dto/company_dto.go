package dto

import (
	"event-portal/core/backend"
	"event-portal/core/dto"
	eventdto "event-portal/modules/event/dto"
)

type CompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type InviteRequest struct {
	Email string       `json:"email"`
	Role  backend.Role `json:"role"`
}

type MemberResponse struct {
	UserID int64        `json:"userId"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Role   backend.Role `json:"role"`
}

type CompanyResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	OwnerID     int64            `json:"ownerId"`
	Members     []MemberResponse `json:"members"`
	EventCount  int              `json:"eventCount"`
}

type AdminEventResponse struct {
	eventdto.EventCardResponse
	ConfirmedCount int `json:"confirmedCount"`
	PendingCount   int `json:"pendingCount"`
}

type DashboardFilters struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

type DashboardStats struct {
	TotalEvents       int `json:"totalEvents"`
	ActiveEvents      int `json:"activeEvents"`
	TotalParticipants int `json:"totalParticipants"`
	PendingApprovals  int `json:"pendingApprovals"`
}

type AdminDashboardResponse struct {
	Company CompanyResponse                    `json:"company"`
	Events  dto.Pagination[AdminEventResponse] `json:"events"`
	Filters DashboardFilters                   `json:"filters"`
	Stats   DashboardStats                     `json:"stats"`
}

type OnboardingUser struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name,omitempty"`
	Email string       `json:"email"`
	Role  backend.Role `json:"role"`
}

type OnboardingResponse struct {
	User       OnboardingUser   `json:"user"`
	Company    *CompanyResponse `json:"company,omitempty"`
	HasCompany bool             `json:"hasCompany"`
}
