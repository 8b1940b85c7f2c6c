package mapper

import (
	"event-portal/core/backend"
	"event-portal/modules/participation/dto"
	"event-portal/modules/participation/service"
)

func ToEventSummary(e *backend.Event) dto.EventSummary {
	s := dto.EventSummary{
		ID:          e.ID,
		Title:       e.Title,
		Type:        e.Type,
		Category:    e.Category,
		Status:      e.Status,
		StatusColor: service.EventStatusBadge(e.Status).Color,
		Venue:       e.Venue,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
	}
	if e.Company != nil {
		s.Company = e.Company.Name
	}
	for _, a := range e.Attachments {
		if a.Type == backend.AttachmentImage {
			s.CoverURL = a.URL
			break
		}
	}
	return s
}

func ToDashboardResponse(d *service.Dashboard) *dto.DashboardResponse {
	entries := make([]dto.DashboardEntry, 0, len(d.Entries))
	for _, e := range d.Entries {
		entry := dto.DashboardEntry{
			ParticipationID: e.Participation.ID,
			Status:          e.Participation.Status,
			StatusBadge:     service.ParticipationBadge(e.Participation.Status),
			JoinedAt:        e.Participation.JoinedAt,
			Event:           ToEventSummary(&e.Event),
		}
		if e.Event.Type == backend.EventTypeOnline && e.Participation.Status == backend.ParticipationConfirmed {
			entry.JoinLink = e.Event.JoinLink
		}
		entries = append(entries, entry)
	}
	return &dto.DashboardResponse{Filter: d.Filter, Counts: d.Counts, Entries: entries}
}

func ToParticipationResponses(ps []backend.Participation) []dto.ParticipationResponse {
	out := make([]dto.ParticipationResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, dto.ParticipationResponse{
			ID:          p.ID,
			EventID:     p.EventID,
			Status:      p.Status,
			StatusBadge: service.ParticipationBadge(p.Status),
			Answers:     p.Answers,
			JoinedAt:    p.JoinedAt,
		})
	}
	return out
}
