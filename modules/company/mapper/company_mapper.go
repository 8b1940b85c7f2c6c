package mapper

import (
	"event-portal/core/backend"
	"event-portal/modules/company/dto"
	eventmapper "event-portal/modules/event/mapper"
)

func ToCompanyInput(req *dto.CompanyRequest, ownerID int64) *backend.CompanyInput {
	return &backend.CompanyInput{Name: req.Name, Description: req.Description, OwnerID: ownerID}
}

func ToCompanyResponse(c *backend.Company) dto.CompanyResponse {
	members := make([]dto.MemberResponse, 0, len(c.Members))
	for _, m := range c.Members {
		members = append(members, dto.MemberResponse{UserID: m.UserID, Name: m.Name, Email: m.Email, Role: m.Role})
	}
	return dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		OwnerID:     c.OwnerID,
		Members:     members,
		EventCount:  len(c.Events),
	}
}

// ParticipantCounts counts confirmed and pending participants of one event.
func ParticipantCounts(e backend.Event) (confirmed, pending int) {
	for _, p := range e.Participants {
		switch p.Status {
		case backend.ParticipationConfirmed:
			confirmed++
		case backend.ParticipationPending:
			pending++
		}
	}
	return confirmed, pending
}

func ToAdminEventResponse(e backend.Event) dto.AdminEventResponse {
	confirmed, pending := ParticipantCounts(e)
	return dto.AdminEventResponse{
		EventCardResponse: eventmapper.ToEventCardResponse(e),
		ConfirmedCount:    confirmed,
		PendingCount:      pending,
	}
}

func ToDashboardStats(events []backend.Event) dto.DashboardStats {
	stats := dto.DashboardStats{TotalEvents: len(events)}
	for _, e := range events {
		confirmed, pending := ParticipantCounts(e)
		stats.TotalParticipants += confirmed
		stats.PendingApprovals += pending
		if e.Status == backend.EventStatusActive {
			stats.ActiveEvents++
		}
	}
	return stats
}

func ToOnboardingUser(u *backend.User) dto.OnboardingUser {
	return dto.OnboardingUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
