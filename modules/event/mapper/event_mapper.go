package mapper

import (
	"time"

	"event-portal/core/backend"
	coredto "event-portal/core/dto"
	"event-portal/modules/event/dto"
	"event-portal/modules/participation/service"

	"github.com/gosimple/slug"
)

// ToEventInput converts a request into the API body. JoinQuestions is sent JSON-encoded.
func ToEventInput(req *dto.EventRequest, questions *string) *backend.EventInput {
	return &backend.EventInput{
		Title:               req.Title,
		Description:         req.Description,
		Type:                req.Type,
		Status:              req.Status,
		Category:            req.Category,
		Venue:               req.Venue,
		JoinLink:            req.JoinLink,
		ContactInfo:         req.ContactInfo,
		TotalSeats:          req.TotalSeats,
		RequiresApproval:    req.RequiresApproval,
		JoinQuestions:       questions,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Attachments:         req.Attachments,
		ExistingAttachments: req.ExistingAttachments,
	}
}

func ToAttachmentResponse(a backend.Attachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{ID: a.ID, URL: a.URL, Type: a.Type, PublicID: a.PublicID}
}

// Cover prefers the first image and falls back to the first video.
func Cover(attachments []backend.Attachment) *dto.AttachmentResponse {
	for _, want := range []backend.AttachmentType{backend.AttachmentImage, backend.AttachmentVideo} {
		for _, a := range attachments {
			if a.Type == want {
				r := ToAttachmentResponse(a)
				return &r
			}
		}
	}
	return nil
}

func ToEventCardResponse(e backend.Event) dto.EventCardResponse {
	card := dto.EventCardResponse{
		ID:                    e.ID,
		Title:                 e.Title,
		Description:           e.Description,
		Type:                  e.Type,
		Category:              e.Category,
		Status:                e.Status,
		StatusColor:           service.EventStatusBadge(e.Status).Color,
		Venue:                 e.Venue,
		StartDate:             e.StartDate,
		EndDate:               e.EndDate,
		TotalSeats:            e.TotalSeats,
		ConfirmedParticipants: e.ConfirmedParticipants,
		RequiresApproval:      e.RequiresApproval,
		Cover:                 Cover(e.Attachments),
	}
	if e.Organizer != nil {
		card.Organizer = e.Organizer.Name
	}
	if e.Company != nil {
		card.Company = e.Company.Name
	}
	return card
}

func ToEventListResponse(page *backend.EventPage, status, search string, now time.Time) *dto.EventListResponse {
	cards := make([]dto.EventCardResponse, 0, len(page.Items))
	var stats dto.EventStats
	for _, e := range page.Items {
		cards = append(cards, ToEventCardResponse(e))
		if e.EndDate.After(now) {
			stats.Active++
		} else {
			stats.Completed++
		}
	}

	size := page.PageSize
	if size < 1 {
		size = len(cards)
	}
	pages := 0
	if size > 0 {
		pages = (page.Total + size - 1) / size
	}

	return &dto.EventListResponse{
		Pagination: coredto.Pagination[dto.EventCardResponse]{
			Items:      cards,
			TotalItems: page.Total,
			TotalPages: pages,
			PageNumber: page.Page,
			PageSize:   page.PageSize,
		},
		Status: status,
		Search: search,
		Stats:  stats,
	}
}

// ToEventResponse hides the join link unless showLink is set.
func ToEventResponse(e *backend.Event, showLink bool) dto.EventResponse {
	attachments := make([]dto.AttachmentResponse, 0, len(e.Attachments))
	for _, a := range e.Attachments {
		attachments = append(attachments, ToAttachmentResponse(a))
	}
	r := dto.EventResponse{
		ID:                    e.ID,
		Slug:                  slug.Make(e.Title),
		Title:                 e.Title,
		Description:           e.Description,
		Type:                  e.Type,
		Category:              e.Category,
		Status:                e.Status,
		StatusColor:           service.EventStatusBadge(e.Status).Color,
		Venue:                 e.Venue,
		ContactInfo:           e.ContactInfo,
		TotalSeats:            e.TotalSeats,
		ConfirmedParticipants: e.ConfirmedParticipants,
		RequiresApproval:      e.RequiresApproval,
		JoinQuestions:         e.Questions(),
		StartDate:             e.StartDate,
		EndDate:               e.EndDate,
		Organizer:             e.Organizer,
		Company:               e.Company,
		Attachments:           attachments,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
	if showLink {
		r.JoinLink = e.JoinLink
	}
	return r
}

func ToEventDetailResponse(e *backend.Event, el service.Eligibility, participation *backend.Participation) *dto.EventDetailResponse {
	return &dto.EventDetailResponse{
		Event:         ToEventResponse(e, el.ShowJoinLink),
		Eligibility:   el,
		JoinButton:    service.Present(el, e),
		Participation: participation,
	}
}

func ToParticipantResponses(ps []backend.Participant) []dto.ParticipantResponse {
	out := make([]dto.ParticipantResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, dto.ParticipantResponse{
			ID:          p.ID,
			EventID:     p.EventID,
			Status:      p.Status,
			StatusBadge: service.ParticipationBadge(p.Status),
			Answers:     p.Answers,
			JoinedAt:    p.JoinedAt,
			ProfileID:   p.Participant.ID,
			Name:        p.Participant.Name,
			Email:       p.Participant.User.Email,
		})
	}
	return out
}
