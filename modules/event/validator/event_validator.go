package validator

import (
	"strings"
	"time"

	"event-portal/core/backend"
	corevalidator "event-portal/core/validator"
	"event-portal/modules/event/dto"
)

const maxJoinQuestionsLength = 2000

var (
	categories = []string{
		string(backend.CategoryConference), string(backend.CategoryWorkshop), string(backend.CategorySeminar),
		string(backend.CategoryWebinar), string(backend.CategoryCompetition), string(backend.CategoryOther),
	}
	eventTypes = []string{string(backend.EventTypeOnline), string(backend.EventTypeOnsite)}
	statuses   = []string{
		string(backend.EventStatusDraft), string(backend.EventStatusActive),
		string(backend.EventStatusCompleted), string(backend.EventStatusCancelled),
	}
)

// ValidateEventRequest checks a full event form. uploads is the number of new files sent alongside it.
// The start date may only lie in the past when an existing event is edited.
func ValidateEventRequest(req *dto.EventRequest, uploads int, creating bool, now time.Time) *corevalidator.ValidationResult {
	v := corevalidator.New()

	textField(v, "title", req.Title, 3, "Title is required", "Title is too short")
	textField(v, "description", req.Description, 10, "Description is required", "Please add more details")

	if req.Category == nil {
		v.Add("TypeOfEvent", "TypeOfEvent is required")
	} else {
		v.OneOf("TypeOfEvent", string(*req.Category), categories...)
	}

	if req.Type == nil {
		v.Add("type", "Visibility is required")
	} else {
		v.OneOf("type", string(*req.Type), eventTypes...)
		switch *req.Type {
		case backend.EventTypeOnsite:
			textField(v, "venue", req.Venue, 3, "Venue is required for onsite events", "Venue is too short")
		case backend.EventTypeOnline:
			if req.JoinLink == nil || strings.TrimSpace(*req.JoinLink) == "" {
				v.Add("joinLink", "Join Link is required for online events")
			} else {
				v.URL("joinLink", *req.JoinLink, "Provide a valid URL (https://...)")
			}
		}
	}

	textField(v, "contactInfo", req.ContactInfo, 3, "Contact info is required", "Contact info is too short")

	if req.TotalSeats != nil && *req.TotalSeats < 0 {
		v.Add("totalSeats", "Total seats must be 0 or greater")
	}

	if req.StartDate == nil {
		v.Add("startDate", "Start date is required")
	} else if creating && startOfDay(*req.StartDate).Before(startOfDay(now)) {
		v.Add("startDate", "Start date cannot be in the past")
	}
	if req.EndDate == nil {
		v.Add("endDate", "End date is required")
	} else if req.StartDate != nil && !req.EndDate.After(*req.StartDate) {
		v.Add("endDate", "End must be after start")
	}

	attachments := uploads
	for _, a := range append(append([]backend.Attachment(nil), req.Attachments...), req.ExistingAttachments...) {
		if a.Type != backend.AttachmentImage && a.Type != backend.AttachmentVideo {
			v.Add("attachments", "Attachment type is required")
			continue
		}
		if a.URL != "" {
			attachments++
		}
	}
	if attachments == 0 {
		v.Add("attachments", "Please add at least one file")
	}

	if len(strings.Join(req.JoinQuestions, "\n")) > maxJoinQuestionsLength {
		v.Add("joinQuestions", "Too long")
	}

	if req.Status == nil {
		v.Add("status", "status is required")
	} else {
		v.OneOf("status", string(*req.Status), statuses...)
	}

	return v
}

func textField(v *corevalidator.ValidationResult, field string, value *string, min int, required, short string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		v.Add(field, required)
		return
	}
	if len([]rune(strings.TrimSpace(*value))) < min {
		v.Add(field, short)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
