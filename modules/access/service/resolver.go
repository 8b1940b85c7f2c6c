package service

import (
	"strings"

	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/modules/session/entity"
)

type Kind string

const (
	KindAllow    Kind = "allow"
	KindRedirect Kind = "redirect"
	KindPending  Kind = "pending"
)

type Decision struct {
	Kind   Kind   `json:"kind"`
	Target string `json:"target,omitempty"`
}

func Allow() Decision                 { return Decision{Kind: KindAllow} }
func Pending() Decision               { return Decision{Kind: KindPending} }
func Redirect(target string) Decision { return Decision{Kind: KindRedirect, Target: target} }

// Evaluate defers to ResolveAccess once the session is hydrated.
func Evaluate(s entity.Session, path string) Decision {
	if !s.Hydrated {
		return Pending()
	}
	return ResolveAccess(path, s.User)
}

// ResolveAccess decides whether user may view path. Rules run in order, first match wins.
func ResolveAccess(path string, user *backend.User) Decision {
	p := normalize(path)

	if p == constants.RouteHome || under(p, constants.RouteEvents) {
		return Allow()
	}

	if under(p, constants.RouteAuth) {
		if user == nil {
			return Allow()
		}
		switch {
		case user.Role == backend.RoleParticipant:
			return Redirect(constants.RouteParticipantDashboard)
		case user.Role.IsOrganizer():
			return Redirect(constants.RouteAdminDashboard)
		}
		// unknown roles fall through to the remaining rules
	}

	if user == nil {
		return Redirect(constants.RouteLogin)
	}

	if under(p, constants.RouteParticipant) && user.Role != backend.RoleParticipant {
		return Redirect(constants.RouteUnauthorized)
	}

	if under(p, constants.RouteAdmin) && !user.Role.IsOrganizer() {
		return Redirect(constants.RouteUnauthorized)
	}

	if under(p, constants.RouteOnboarding) {
		if !user.Role.IsOrganizer() {
			return Redirect(constants.RouteUnauthorized)
		}
		if user.HasCompany() {
			return Redirect(constants.RouteAdminDashboard)
		}
		return Allow()
	}

	return Allow()
}

// normalize strips the query, the fragment and trailing slashes.
func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func under(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
