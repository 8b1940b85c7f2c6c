package backend

import (
	"encoding/json"
	"time"
)

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleOrganizer   Role = "ORGANIZER"
	RoleParticipant Role = "PARTICIPANT"
)

// IsOrganizer reports whether the role manages a company.
func (r Role) IsOrganizer() bool {
	return r == RoleAdmin || r == RoleOrganizer
}

type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusActive    EventStatus = "ACTIVE"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

type EventType string

const (
	EventTypeOnline EventType = "ONLINE"
	EventTypeOnsite EventType = "ONSITE"
)

type EventCategory string

const (
	CategoryWebinar     EventCategory = "WEBINAR"
	CategorySeminar     EventCategory = "SEMINAR"
	CategoryWorkshop    EventCategory = "WORKSHOP"
	CategoryCompetition EventCategory = "COMPETITION"
	CategoryConference  EventCategory = "CONFERENCE"
	CategoryOther       EventCategory = "OTHER"
)

type ParticipationStatus string

const (
	ParticipationPending   ParticipationStatus = "PENDING"
	ParticipationConfirmed ParticipationStatus = "CONFIRMED"
	ParticipationRejected  ParticipationStatus = "REJECTED"
	ParticipationCancelled ParticipationStatus = "CANCELLED"
)

// IsActive is true for participations that hold or request a seat.
func (s ParticipationStatus) IsActive() bool {
	return s == ParticipationPending || s == ParticipationConfirmed
}

type AttachmentType string

const (
	AttachmentImage AttachmentType = "IMAGE"
	AttachmentVideo AttachmentType = "VIDEO"
)

type User struct {
	ID             int64           `json:"id"`
	Email          string          `json:"email"`
	Role           Role            `json:"role"`
	Name           string          `json:"name,omitempty"`
	CompanyID      *int64          `json:"companyId,omitempty"`
	ProfileID      *int64          `json:"profileId,omitempty"`
	Participations []Participation `json:"participations,omitempty"`
}

// HasCompany treats an unset or zero company id as no company.
func (u *User) HasCompany() bool {
	return u != nil && u.CompanyID != nil && *u.CompanyID != 0
}

type Participation struct {
	ID            int64               `json:"id"`
	EventID       int64               `json:"eventId"`
	ParticipantID int64               `json:"participantId"`
	Status        ParticipationStatus `json:"status"`
	Answers       map[string]any      `json:"answers,omitempty"`
	JoinedAt      time.Time           `json:"joinedAt"`
}

type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Attachment struct {
	ID       int64          `json:"id,omitempty"`
	URL      string         `json:"url"`
	Type     AttachmentType `json:"type"`
	PublicID string         `json:"publicId,omitempty"`
}

type Event struct {
	ID                    int64         `json:"id"`
	Title                 string        `json:"title"`
	Description           string        `json:"description"`
	Type                  EventType     `json:"type"`
	Status                EventStatus   `json:"status"`
	Category              EventCategory `json:"TypeOfEvent"`
	Venue                 string        `json:"venue,omitempty"`
	JoinLink              string        `json:"joinLink,omitempty"`
	ContactInfo           string        `json:"contactInfo,omitempty"`
	TotalSeats            *int          `json:"totalSeats,omitempty"`
	RequiresApproval      bool          `json:"requiresApproval"`
	JoinQuestions         string        `json:"joinQuestions,omitempty"`
	StartDate             time.Time     `json:"startDate"`
	EndDate               time.Time     `json:"endDate"`
	ConfirmedParticipants int           `json:"confirmedParticipants"`
	Organizer             *Ref          `json:"organizer,omitempty"`
	Company               *Ref          `json:"company,omitempty"`
	Attachments           []Attachment  `json:"attachments,omitempty"`
	Participants          []Participant `json:"participants,omitempty"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

// Questions decodes the JSON-encoded join questions. Malformed input yields no questions.
func (e *Event) Questions() []string {
	if e.JoinQuestions == "" {
		return []string{}
	}
	var qs []string
	if err := json.Unmarshal([]byte(e.JoinQuestions), &qs); err != nil {
		return []string{}
	}
	return qs
}

type EventPage struct {
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	Total    int     `json:"total"`
	Items    []Event `json:"items"`
}

type EventQuery struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

// EventInput is the body of create and update calls. Nil fields are left untouched on update.
type EventInput struct {
	Title            *string        `json:"title,omitempty"`
	Description      *string        `json:"description,omitempty"`
	Type             *EventType     `json:"type,omitempty"`
	Status           *EventStatus   `json:"status,omitempty"`
	Category         *EventCategory `json:"TypeOfEvent,omitempty"`
	Venue            *string        `json:"venue,omitempty"`
	JoinLink         *string        `json:"joinLink,omitempty"`
	ContactInfo      *string        `json:"contactInfo,omitempty"`
	TotalSeats       *int           `json:"totalSeats,omitempty"`
	RequiresApproval *bool          `json:"requiresApproval,omitempty"`
	JoinQuestions    *string        `json:"joinQuestions,omitempty"`
	StartDate        *time.Time     `json:"startDate,omitempty"`
	EndDate          *time.Time     `json:"endDate,omitempty"`
	CompanyID        *int64         `json:"companyId,omitempty"`
	OrganizerID      *int64         `json:"organizerId,omitempty"`

	Attachments         []Attachment `json:"attachments,omitempty"`
	ExistingAttachments []Attachment `json:"existingAttachments,omitempty"`
}

type Member struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

type Company struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	OwnerID     int64    `json:"ownerId"`
	Events      []Event  `json:"events,omitempty"`
	Members     []Member `json:"members,omitempty"`
}

type CompanyInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     int64  `json:"ownerId,omitempty"`
}

type InviteInput struct {
	CompanyID int64  `json:"companyId"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

type ParticipantProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	User struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// Participant is a participation as seen by the organizer.
type Participant struct {
	Participation
	Participant ParticipantProfile `json:"participant"`
}

type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OTPInput struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

type VerifyOTPInput struct {
	Email string `json:"email"`
	Code  string `json:"code"`
	Role  Role   `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
}

type ResetPasswordInput struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type JoinInput struct {
	Answers map[string]any `json:"answers"`
}

// Message is the generic acknowledgement body.
type Message struct {
	Message string `json:"message,omitempty"`
}
