// Package reducer holds the only functions allowed to change a session.
// Each returns a new value and never mutates its input.
package reducer

import (
	"event-portal/core/backend"
	"event-portal/modules/session/entity"
)

func SignIn(s entity.Session, user *backend.User, token string) entity.Session {
	s.User = cloneUser(user)
	s.Token = token
	return s
}

// SignOut drops every slice but keeps the session identity.
func SignOut(s entity.Session) entity.Session {
	return entity.Session{ID: s.ID, Hydrated: s.Hydrated}
}

// ReplaceUser swaps the user record and keeps the current token.
func ReplaceUser(s entity.Session, user *backend.User) entity.Session {
	s.User = cloneUser(user)
	return s
}

func SetCompany(s entity.Session, company *backend.Company) entity.Session {
	if company == nil {
		s.Company = nil
		return s
	}
	c := *company
	s.Company = &c
	return s
}

func ClearCompany(s entity.Session) entity.Session {
	s.Company = nil
	return s
}

func SetEvents(s entity.Session, page *backend.EventPage) entity.Session {
	if page == nil {
		s.Events = nil
		return s
	}
	p := *page
	p.Items = append([]backend.Event(nil), page.Items...)
	s.Events = &p
	return s
}

func ClearEvents(s entity.Session) entity.Session {
	s.Events = nil
	return s
}

// RecordJoin stores p as the user's participation for its event, replacing any earlier one.
func RecordJoin(s entity.Session, p backend.Participation) entity.Session {
	if s.User == nil {
		return s
	}
	u := cloneUser(s.User)
	kept := make([]backend.Participation, 0, len(u.Participations)+1)
	for _, existing := range u.Participations {
		if existing.EventID != p.EventID {
			kept = append(kept, existing)
		}
	}
	u.Participations = append(kept, p)
	s.User = u
	return s
}

// AssignCompany links the user to a newly created company.
func AssignCompany(s entity.Session, companyID int64) entity.Session {
	if s.User == nil {
		return s
	}
	u := cloneUser(s.User)
	id := companyID
	u.CompanyID = &id
	s.User = u
	return s
}

func cloneUser(u *backend.User) *backend.User {
	if u == nil {
		return nil
	}
	c := *u
	c.Participations = append([]backend.Participation(nil), u.Participations...)
	if u.CompanyID != nil {
		id := *u.CompanyID
		c.CompanyID = &id
	}
	if u.ProfileID != nil {
		id := *u.ProfileID
		c.ProfileID = &id
	}
	return &c
}
