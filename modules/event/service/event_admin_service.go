package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/core/storage"
	"event-portal/modules/event/dto"
	"event-portal/modules/event/mapper"
	"event-portal/modules/session/entity"
)

func (s *EventService) CreateEvent(ctx context.Context, sess entity.Session, req *dto.EventRequest, files []dto.UploadFile) (*dto.EventResponse, *errors.AppError) {
	return s.saveEvent(ctx, sess, 0, req, files)
}

func (s *EventService) UpdateEvent(ctx context.Context, sess entity.Session, id int64, req *dto.EventRequest, files []dto.UploadFile) (*dto.EventResponse, *errors.AppError) {
	return s.saveEvent(ctx, sess, id, req, files)
}

// saveEvent creates the event when id is zero and updates it otherwise.
func (s *EventService) saveEvent(ctx context.Context, sess entity.Session, id int64, req *dto.EventRequest, files []dto.UploadFile) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.UploadTimeout)
	defer cancel()

	if !sess.User.HasCompany() {
		return nil, errors.NewAppError(errors.ErrForbidden, "Create a company before managing events", nil)
	}

	uploaded, appErr := s.upload(ctx, files)
	if appErr != nil {
		return nil, appErr
	}

	input, appErr := buildEventInput(req, sess.User)
	if appErr != nil {
		s.discard(ctx, uploaded)
		return nil, appErr
	}
	input.Attachments = append(input.Attachments, uploaded...)

	var (
		event *backend.Event
		err   error
	)
	if id == 0 {
		event, err = s.events.CreateEvent(ctx, sess.Token, input)
	} else {
		event, err = s.events.UpdateEvent(ctx, sess.Token, id, input)
	}
	if err != nil {
		s.discard(ctx, uploaded)
		if id == 0 {
			return nil, backend.ToAppError(err, "Failed to create event")
		}
		return nil, backend.ToAppError(err, "Failed to update event")
	}
	logger.Info("EventService:SaveEvent:Saved", "event_id", event.ID, "created", id == 0, "uploads", len(uploaded))

	s.refreshCompany(ctx, sess)
	resp := mapper.ToEventResponse(event, true)
	return &resp, nil
}

func buildEventInput(req *dto.EventRequest, user *backend.User) (*backend.EventInput, *errors.AppError) {
	var questions *string
	if qs := cleanQuestions(req.JoinQuestions); len(qs) > 0 {
		b, err := json.Marshal(qs)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid join questions", err)
		}
		text := string(b)
		questions = &text
	}

	input := mapper.ToEventInput(req, questions)
	if req.Type != nil {
		switch *req.Type {
		case backend.EventTypeOnline:
			input.Venue = nil
		case backend.EventTypeOnsite:
			input.JoinLink = nil
		}
	}
	input.CompanyID = user.CompanyID
	input.OrganizerID = user.ProfileID
	return input, nil
}

func cleanQuestions(qs []string) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	return out
}

func (s *EventService) upload(ctx context.Context, files []dto.UploadFile) ([]backend.Attachment, *errors.AppError) {
	if len(files) == 0 {
		return nil, nil
	}
	if s.uploader == nil {
		return nil, errors.NewAppError(errors.ErrUploadFailed, "file uploads are not enabled", nil)
	}

	attachments := make([]backend.Attachment, 0, len(files))
	for _, f := range files {
		a, err := s.uploadOne(ctx, f)
		if err != nil {
			logger.Error("EventService:Upload:Failed", "file", f.Header.Filename, "error", err)
			s.discard(ctx, attachments)
			return nil, errors.NewAppError(errors.ErrUploadFailed, "Failed to upload "+f.Header.Filename, err)
		}
		attachments = append(attachments, *a)
	}
	return attachments, nil
}

func (s *EventService) uploadOne(ctx context.Context, f dto.UploadFile) (*backend.Attachment, error) {
	if f.Header.Size > constants.MaxUploadSize {
		return nil, fmt.Errorf("file exceeds %d bytes", constants.MaxUploadSize)
	}
	body, err := f.Header.Open()
	if err != nil {
		return nil, err
	}
	defer body.Close()

	contentType := f.Header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	obj, err := s.uploader.Upload(ctx, storage.ObjectKey(constants.StorageEventsPath, f.Header.Filename), body, contentType)
	if err != nil {
		return nil, err
	}
	return &backend.Attachment{URL: obj.URL, Type: f.Type, PublicID: obj.Key}, nil
}

// discard removes objects uploaded for a request that did not go through.
func (s *EventService) discard(ctx context.Context, attachments []backend.Attachment) {
	for _, a := range attachments {
		if err := s.uploader.Delete(ctx, a.PublicID); err != nil {
			logger.Warn("EventService:Discard:Delete", "key", a.PublicID, "error", err)
		}
	}
}

func (s *EventService) refreshCompany(ctx context.Context, sess entity.Session) {
	if s.companies == nil {
		return
	}
	if _, appErr := s.companies.Refresh(ctx, sess); appErr != nil {
		logger.Warn("EventService:RefreshCompany", "session", sess.ID, "error", appErr)
	}
}

func (s *EventService) DeleteEvent(ctx context.Context, sess entity.Session, id int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.events.DeleteEvent(ctx, sess.Token, id); err != nil {
		return backend.ToAppError(err, "Failed to delete event")
	}
	logger.Info("EventService:DeleteEvent:Deleted", "event_id", id)
	s.refreshCompany(ctx, sess)
	return nil
}

func (s *EventService) ListParticipants(ctx context.Context, sess entity.Session, id int64) ([]dto.ParticipantResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	participants, err := s.events.ListParticipants(ctx, sess.Token, id)
	if err != nil {
		return nil, backend.ToAppError(err, "Failed to fetch participants")
	}
	return mapper.ToParticipantResponses(participants), nil
}

// ApproveParticipant confirms a pending participation. The company snapshot is refreshed in the background.
func (s *EventService) ApproveParticipant(ctx context.Context, sess entity.Session, eventID, participationID int64) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.events.ApproveParticipant(ctx, sess.Token, eventID, participationID); err != nil {
		return backend.ToAppError(err, "Failed to approve participant")
	}
	logger.Info("EventService:ApproveParticipant:Approved", "event_id", eventID, "participation_id", participationID)
	if s.companies != nil {
		s.companies.ScheduleRefresh(ctx, sess)
	}
	return nil
}
