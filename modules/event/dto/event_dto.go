package dto

import (
	"mime/multipart"
	"time"

	"event-portal/core/backend"
	"event-portal/core/dto"
	"event-portal/modules/participation/service"
)

// EventRequest is the create and update body. Nil fields are not sent on update.
type EventRequest struct {
	Title            *string                `json:"title"`
	Description      *string                `json:"description"`
	Type             *backend.EventType     `json:"type"`
	Status           *backend.EventStatus   `json:"status"`
	Category         *backend.EventCategory `json:"TypeOfEvent"`
	Venue            *string                `json:"venue"`
	JoinLink         *string                `json:"joinLink"`
	ContactInfo      *string                `json:"contactInfo"`
	TotalSeats       *int                   `json:"totalSeats"`
	RequiresApproval *bool                  `json:"requiresApproval"`
	JoinQuestions    []string               `json:"joinQuestions"`
	StartDate        *time.Time             `json:"startDate"`
	EndDate          *time.Time             `json:"endDate"`

	Attachments         []backend.Attachment `json:"attachments"`
	ExistingAttachments []backend.Attachment `json:"existingAttachments"`
}

// UploadFile is one multipart file and the attachment type declared for it.
type UploadFile struct {
	Header *multipart.FileHeader
	Type   backend.AttachmentType
}

type JoinRequest struct {
	Answers map[string]any `json:"answers"`
}

type AttachmentResponse struct {
	ID       int64                  `json:"id,omitempty"`
	URL      string                 `json:"url"`
	Type     backend.AttachmentType `json:"type"`
	PublicID string                 `json:"publicId,omitempty"`
}

type EventCardResponse struct {
	ID                    int64                 `json:"id"`
	Title                 string                `json:"title"`
	Description           string                `json:"description"`
	Type                  backend.EventType     `json:"type"`
	Category              backend.EventCategory `json:"TypeOfEvent"`
	Status                backend.EventStatus   `json:"status"`
	StatusColor           string                `json:"statusColor"`
	Venue                 string                `json:"venue,omitempty"`
	StartDate             time.Time             `json:"startDate"`
	EndDate               time.Time             `json:"endDate"`
	TotalSeats            *int                  `json:"totalSeats,omitempty"`
	ConfirmedParticipants int                   `json:"confirmedParticipants"`
	RequiresApproval      bool                  `json:"requiresApproval"`
	Organizer             string                `json:"organizer,omitempty"`
	Company               string                `json:"company,omitempty"`
	Cover                 *AttachmentResponse   `json:"cover,omitempty"`
}

type EventStats struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type EventListResponse struct {
	dto.Pagination[EventCardResponse]
	Status string     `json:"status"`
	Search string     `json:"search,omitempty"`
	Stats  EventStats `json:"stats"`
}

type EventResponse struct {
	ID                    int64                 `json:"id"`
	Slug                  string                `json:"slug"`
	Title                 string                `json:"title"`
	Description           string                `json:"description"`
	Type                  backend.EventType     `json:"type"`
	Category              backend.EventCategory `json:"TypeOfEvent"`
	Status                backend.EventStatus   `json:"status"`
	StatusColor           string                `json:"statusColor"`
	Venue                 string                `json:"venue,omitempty"`
	JoinLink              string                `json:"joinLink,omitempty"`
	ContactInfo           string                `json:"contactInfo,omitempty"`
	TotalSeats            *int                  `json:"totalSeats,omitempty"`
	ConfirmedParticipants int                   `json:"confirmedParticipants"`
	RequiresApproval      bool                  `json:"requiresApproval"`
	JoinQuestions         []string              `json:"joinQuestions"`
	StartDate             time.Time             `json:"startDate"`
	EndDate               time.Time             `json:"endDate"`
	Organizer             *backend.Ref          `json:"organizer,omitempty"`
	Company               *backend.Ref          `json:"company,omitempty"`
	Attachments           []AttachmentResponse  `json:"attachments"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}

type EventDetailResponse struct {
	Event         EventResponse          `json:"event"`
	Eligibility   service.Eligibility    `json:"eligibility"`
	JoinButton    service.JoinButton     `json:"joinButton"`
	Participation *backend.Participation `json:"participation,omitempty"`
}

type JoinResponse struct {
	Participation backend.Participation `json:"participation"`
	Detail        EventDetailResponse   `json:"detail"`
}

type ParticipantResponse struct {
	ID          int64                       `json:"id"`
	EventID     int64                       `json:"eventId"`
	Status      backend.ParticipationStatus `json:"status"`
	StatusBadge service.Badge               `json:"statusBadge"`
	Answers     map[string]any              `json:"answers,omitempty"`
	JoinedAt    time.Time                   `json:"joinedAt"`
	ProfileID   int64                       `json:"profileId"`
	Name        string                      `json:"name"`
	Email       string                      `json:"email"`
}
