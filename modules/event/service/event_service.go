package service

import (
	"context"
	"time"

	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/core/params"
	"event-portal/core/queue"
	"event-portal/core/storage"
	"event-portal/modules/event/dto"
	"event-portal/modules/event/mapper"
	participation "event-portal/modules/participation/service"
	"event-portal/modules/session/entity"
	"event-portal/modules/session/reducer"
	sessionservice "event-portal/modules/session/service"
)

// CompanyRefresher reloads the company snapshot after its events change.
type CompanyRefresher interface {
	Refresh(ctx context.Context, sess entity.Session) (entity.Session, *errors.AppError)
	ScheduleRefresh(ctx context.Context, sess entity.Session)
}

type EventServiceInterface interface {
	ListEvents(ctx context.Context, sess entity.Session, params params.QueryParams) (*dto.EventListResponse, *errors.AppError)
	GetEventDetail(ctx context.Context, sess entity.Session, id int64) (*dto.EventDetailResponse, *errors.AppError)
	JoinEvent(ctx context.Context, sess entity.Session, id int64, req *dto.JoinRequest) (*dto.JoinResponse, *errors.AppError)

	CreateEvent(ctx context.Context, sess entity.Session, req *dto.EventRequest, files []dto.UploadFile) (*dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, sess entity.Session, id int64, req *dto.EventRequest, files []dto.UploadFile) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, sess entity.Session, id int64) *errors.AppError
	ListParticipants(ctx context.Context, sess entity.Session, id int64) ([]dto.ParticipantResponse, *errors.AppError)
	ApproveParticipant(ctx context.Context, sess entity.Session, eventID, participationID int64) *errors.AppError

	MarkExpired(ctx context.Context, token string) *errors.AppError
}

type EventService struct {
	events    backend.EventAPI
	sessions  sessionservice.SessionServiceInterface
	companies CompanyRefresher
	uploader  storage.Uploader
	queue     queue.Client
	now       func() time.Time
}

// NewEventService accepts a nil uploader or queue. Uploads are then refused and background sync is skipped.
func NewEventService(events backend.EventAPI, sessions sessionservice.SessionServiceInterface, companies CompanyRefresher, uploader storage.Uploader, q queue.Client) *EventService {
	return &EventService{
		events:    events,
		sessions:  sessions,
		companies: companies,
		uploader:  uploader,
		queue:     q,
		now:       time.Now,
	}
}

// listStatus maps the public filter to the API value. Empty means active; anything unknown means all.
func listStatus(s string) string {
	switch s {
	case "":
		return "active"
	case "active", "completed", "cancelled":
		return s
	default:
		return "all"
	}
}

func (s *EventService) ListEvents(ctx context.Context, sess entity.Session, params params.QueryParams) (*dto.EventListResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	status := listStatus(params.Status)
	logger.Info("EventService:ListEvents:Request", "status", status, "search", params.Search, "page", params.PageNumber, "page_size", params.PageSize)

	page, err := s.events.ListEvents(ctx, sess.Token, backend.EventQuery{
		Status:   status,
		Search:   params.Search,
		Page:     params.PageNumber,
		PageSize: params.PageSize,
	})
	if err != nil {
		return nil, backend.ToAppError(err, "Failed to fetch events")
	}

	if sess.SignedIn() {
		if appErr := s.sessions.Commit(ctx, sess, reducer.SetEvents(sess, page)); appErr != nil {
			logger.Warn("EventService:ListEvents:CacheEvents", "session", sess.ID, "error", appErr)
		}
	}
	s.scheduleMarkExpired(ctx)

	return mapper.ToEventListResponse(page, status, params.Search, s.now()), nil
}

// scheduleMarkExpired asks the worker to sync expired events. The task carries no payload,
// so repeats from any visitor within a minute collapse into one.
func (s *EventService) scheduleMarkExpired(ctx context.Context) {
	if s.queue == nil {
		return
	}
	_, err := s.queue.Enqueue(ctx, queue.Task{Type: constants.TaskMarkExpired}, queue.EnqueueOption{
		Queue:     constants.QueueMaintenance,
		UniqueTTL: constants.MarkExpiredUniqueTTL,
		Deadline:  s.now().Add(constants.MarkExpiredUniqueTTL),
	})
	if err != nil && !queue.IsDuplicate(err) {
		logger.Warn("EventService:ScheduleMarkExpired:Enqueue", "error", err)
	}
}

func (s *EventService) MarkExpired(ctx context.Context, token string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.events.MarkExpired(ctx, token); err != nil {
		return backend.ToAppError(err, "Failed to sync expired events")
	}
	return nil
}

func (s *EventService) GetEventDetail(ctx context.Context, sess entity.Session, id int64) (*dto.EventDetailResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, err := s.events.GetEvent(ctx, sess.Token, id)
	if err != nil {
		return nil, backend.ToAppError(err, "Failed to load event details")
	}
	return s.detail(event, sess), nil
}

func (s *EventService) detail(event *backend.Event, sess entity.Session) *dto.EventDetailResponse {
	var ps []backend.Participation
	if sess.SignedIn() {
		ps = sess.User.Participations
	}
	el := participation.Derive(event, ps, sess.Role(), s.now())
	return mapper.ToEventDetailResponse(event, el, findParticipation(ps, event.ID))
}

func findParticipation(ps []backend.Participation, eventID int64) *backend.Participation {
	var found *backend.Participation
	for i := range ps {
		if ps[i].EventID != eventID || !ps[i].Status.IsActive() {
			continue
		}
		if found == nil || ps[i].Status == backend.ParticipationConfirmed {
			found = &ps[i]
		}
	}
	return found
}

// JoinEvent refuses joins the deriver rules out before calling the API, then records the
// new participation in the session.
func (s *EventService) JoinEvent(ctx context.Context, sess entity.Session, id int64, req *dto.JoinRequest) (*dto.JoinResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if sess.Role() != backend.RoleParticipant {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only participants can join events", nil)
	}

	event, err := s.events.GetEvent(ctx, sess.Token, id)
	if err != nil {
		return nil, backend.ToAppError(err, "Failed to load event details")
	}

	el := participation.Derive(event, sess.User.Participations, sess.Role(), s.now())
	if reason := participation.Refusal(el, event, sess.Role()); reason != "" {
		logger.Info("EventService:JoinEvent:Refused", "event_id", id, "reason", reason)
		return nil, errors.NewAppError(errors.ErrNotEligible, reason, nil)
	}

	answers := req.Answers
	if answers == nil {
		answers = map[string]any{}
	}
	created, err := s.events.JoinEvent(ctx, sess.Token, id, &backend.JoinInput{Answers: answers})
	if err != nil {
		return nil, backend.ToAppError(err, "Failed to join event")
	}

	p := backend.Participation{EventID: id, Answers: answers, JoinedAt: s.now()}
	if event.RequiresApproval {
		p.Status = backend.ParticipationPending
	} else {
		p.Status = backend.ParticipationConfirmed
	}
	if created != nil {
		p.ID = created.ID
		p.ParticipantID = created.ParticipantID
		if created.Status != "" {
			p.Status = created.Status
		}
		if !created.JoinedAt.IsZero() {
			p.JoinedAt = created.JoinedAt
		}
	}

	next := reducer.RecordJoin(sess, p)
	if appErr := s.sessions.Commit(ctx, sess, next); appErr != nil {
		return nil, appErr
	}
	logger.Info("EventService:JoinEvent:Joined", "event_id", id, "status", p.Status)

	// the seat count moved; fall back to the event we already have
	if fresh, err := s.events.GetEvent(ctx, sess.Token, id); err == nil {
		event = fresh
	} else {
		logger.Warn("EventService:JoinEvent:Refetch", "event_id", id, "error", err)
	}

	return &dto.JoinResponse{Participation: p, Detail: *s.detail(event, next)}, nil
}
