package service

import (
	"context"
	"strings"

	"event-portal/core/backend"
	"event-portal/core/constants"
	coredto "event-portal/core/dto"
	"event-portal/core/entity"
	"event-portal/core/errors"
	"event-portal/core/params"
	"event-portal/modules/company/dto"
	"event-portal/modules/company/mapper"
	sessionentity "event-portal/modules/session/entity"
)

const filterAll = "ALL"

type DashboardQuery struct {
	Page     int
	Search   string
	Category string
	Status   string
}

// NewDashboardQuery reads the admin dashboard filters. Category and status default to ALL.
func NewDashboardQuery(p params.QueryParams) DashboardQuery {
	q := DashboardQuery{
		Page:     p.PageNumber,
		Search:   p.Search,
		Category: strings.ToUpper(p.Category),
		Status:   strings.ToUpper(p.Status),
	}
	if q.Category == "" {
		q.Category = filterAll
	}
	if q.Status == "" {
		q.Status = filterAll
	}
	return q
}

// FilterEvents keeps events matching the search text (title, description or organizer name,
// case-insensitive) and the category and status filters.
func FilterEvents(events []backend.Event, q DashboardQuery) []backend.Event {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]backend.Event, 0, len(events))
	for _, e := range events {
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if q.Category != filterAll && string(e.Category) != q.Category {
			continue
		}
		if q.Status != filterAll && string(e.Status) != q.Status {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e backend.Event, search string) bool {
	if strings.Contains(strings.ToLower(e.Title), search) || strings.Contains(strings.ToLower(e.Description), search) {
		return true
	}
	return e.Organizer != nil && strings.Contains(strings.ToLower(e.Organizer.Name), search)
}

// Dashboard serves the company snapshot, loading it first when the session has none yet.
func (s *CompanyService) Dashboard(ctx context.Context, sess sessionentity.Session, q DashboardQuery) (*dto.AdminDashboardResponse, *errors.AppError) {
	if sess.Company == nil {
		if _, ok := companyID(sess); !ok {
			return nil, errors.NewAppError(errors.ErrNotFound, "No company yet", nil)
		}
		next, appErr := s.Refresh(ctx, sess)
		if appErr != nil {
			return nil, appErr
		}
		sess = next
	}

	company := sess.Company
	filtered := FilterEvents(company.Events, q)
	page := entity.Paginate(filtered, q.Page, constants.AdminEventsPageSize)

	return &dto.AdminDashboardResponse{
		Company: mapper.ToCompanyResponse(company),
		Events:  coredto.ToPagination(page, mapper.ToAdminEventResponse),
		Filters: dto.DashboardFilters{Search: q.Search, Category: q.Category, Status: q.Status},
		Stats:   mapper.ToDashboardStats(company.Events),
	}, nil
}
