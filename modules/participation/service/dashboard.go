package service

import (
	"context"
	"time"

	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/modules/session/entity"

	"github.com/sourcegraph/conc/iter"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterConfirmed Filter = "confirmed"
	FilterUpcoming  Filter = "upcoming"
	FilterPast      Filter = "past"
)

// ParseFilter falls back to FilterAll for unknown values.
func ParseFilter(s string) Filter {
	switch f := Filter(s); f {
	case FilterPending, FilterConfirmed, FilterUpcoming, FilterPast:
		return f
	default:
		return FilterAll
	}
}

// Entry pairs a participation with the event it points at.
type Entry struct {
	Participation backend.Participation
	Event         backend.Event
}

type Counts struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Total     int `json:"total"`
}

type Dashboard struct {
	Filter  Filter
	Counts  Counts
	Entries []Entry
	Now     time.Time
}

func FilterDashboard(entries []Entry, f Filter, now time.Time) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if matches(e, f, now) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Entry, f Filter, now time.Time) bool {
	switch f {
	case FilterPending:
		return e.Participation.Status == backend.ParticipationPending
	case FilterConfirmed:
		return e.Participation.Status == backend.ParticipationConfirmed
	case FilterUpcoming:
		return e.Participation.Status == backend.ParticipationConfirmed && e.Event.StartDate.After(now)
	case FilterPast:
		return e.Event.EndDate.Before(now)
	default:
		return true
	}
}

func CountParticipations(ps []backend.Participation) Counts {
	c := Counts{Total: len(ps)}
	for _, p := range ps {
		switch p.Status {
		case backend.ParticipationConfirmed:
			c.Confirmed++
		case backend.ParticipationPending:
			c.Pending++
		}
	}
	return c
}

type DashboardServiceInterface interface {
	Dashboard(ctx context.Context, sess entity.Session, filter Filter) (*Dashboard, *errors.AppError)
}

type DashboardService struct {
	events  backend.EventAPI
	workers int
	now     func() time.Time
}

func NewDashboardService(events backend.EventAPI) *DashboardService {
	return &DashboardService{
		events:  events,
		workers: constants.DashboardFetchWorkers,
		now:     time.Now,
	}
}

// Dashboard loads every participation's event concurrently. Events that fail to load are skipped.
func (s *DashboardService) Dashboard(ctx context.Context, sess entity.Session, filter Filter) (*Dashboard, *errors.AppError) {
	if !sess.SignedIn() {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	participations := sess.User.Participations
	mapper := iter.Mapper[backend.Participation, *Entry]{MaxGoroutines: s.workers}
	loaded := mapper.Map(participations, func(p *backend.Participation) *Entry {
		event, err := s.events.GetEvent(ctx, sess.Token, p.EventID)
		if err != nil {
			logger.Warn("DashboardService:Dashboard:GetEvent", "eventId", p.EventID, "error", err)
			return nil
		}
		return &Entry{Participation: *p, Event: *event}
	})

	entries := make([]Entry, 0, len(loaded))
	for _, e := range loaded {
		if e != nil {
			entries = append(entries, *e)
		}
	}

	now := s.now()
	return &Dashboard{
		Filter:  filter,
		Counts:  CountParticipations(participations),
		Entries: FilterDashboard(entries, filter, now),
		Now:     now,
	}, nil
}
