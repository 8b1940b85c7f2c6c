package service

import (
	"time"

	"event-portal/core/backend"
)

// Eligibility is what a visitor may do with one event right now.
type Eligibility struct {
	HasJoined    bool                         `json:"hasJoined"`
	JoinStatus   *backend.ParticipationStatus `json:"joinStatus"`
	IsEventFull  bool                         `json:"isEventFull"`
	HasStarted   bool                         `json:"hasStarted"`
	HasEnded     bool                         `json:"hasEnded"`
	CanJoin      bool                         `json:"canJoin"`
	ShowJoinLink bool                         `json:"showJoinLink"`
}

type JoinButton struct {
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Disabled bool   `json:"disabled"`
}

type Badge struct {
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// Derive matches the visitor's participations against the live event.
// CONFIRMED wins over PENDING when both exist for the event.
func Derive(event *backend.Event, participations []backend.Participation, role backend.Role, now time.Time) Eligibility {
	var el Eligibility
	if event == nil {
		return el
	}

	if status, ok := joinStatus(event.ID, participations); ok {
		el.HasJoined = true
		el.JoinStatus = &status
	}

	el.IsEventFull = IsFull(event)
	el.HasStarted = !event.StartDate.After(now)
	el.HasEnded = !event.EndDate.After(now)

	el.CanJoin = role == backend.RoleParticipant &&
		event.Status == backend.EventStatusActive &&
		!el.HasEnded &&
		!el.IsEventFull &&
		!el.HasJoined

	el.ShowJoinLink = event.Type == backend.EventTypeOnline &&
		event.JoinLink != "" &&
		el.JoinStatus != nil && *el.JoinStatus == backend.ParticipationConfirmed

	return el
}

// IsFull is true only when a positive capacity is set and reached.
func IsFull(event *backend.Event) bool {
	if event.TotalSeats == nil || *event.TotalSeats <= 0 {
		return false
	}
	return event.ConfirmedParticipants >= *event.TotalSeats
}

func joinStatus(eventID int64, participations []backend.Participation) (backend.ParticipationStatus, bool) {
	pending := false
	for _, p := range participations {
		if p.EventID != eventID {
			continue
		}
		switch p.Status {
		case backend.ParticipationConfirmed:
			return backend.ParticipationConfirmed, true
		case backend.ParticipationPending:
			pending = true
		}
	}
	if pending {
		return backend.ParticipationPending, true
	}
	return "", false
}

// Present maps eligibility to the join button.
func Present(el Eligibility, event *backend.Event) JoinButton {
	approval := event != nil && event.RequiresApproval
	b := JoinButton{Color: "yellow", Icon: "user-plus", Disabled: !el.CanJoin}
	if approval {
		b.Icon = "clipboard-check"
	}

	switch {
	case el.HasJoined && el.JoinStatus != nil && *el.JoinStatus == backend.ParticipationPending:
		b.Label, b.Icon, b.Color = "Request Pending", "hourglass-half", "orange"
	case el.HasJoined:
		b.Label, b.Icon, b.Color = "Joined", "check-circle", "green"
	case el.HasEnded:
		b.Label = "Event Ended"
	case el.IsEventFull:
		b.Label = "Event Full"
	case approval:
		b.Label = "Request to Join"
	default:
		b.Label = "Join Event"
	}
	return b
}

// Refusal names why a join attempt is not allowed, or "" when it is.
func Refusal(el Eligibility, event *backend.Event, role backend.Role) string {
	switch {
	case el.CanJoin:
		return ""
	case role != backend.RoleParticipant:
		return "Only participants can join events"
	case el.HasJoined:
		return "You have already joined this event"
	case el.HasEnded:
		return "Event Ended"
	case el.IsEventFull:
		return "Event Full"
	case event != nil && event.Status != backend.EventStatusActive:
		return "Event is not open for registration"
	default:
		return "You cannot join this event"
	}
}

func EventStatusBadge(status backend.EventStatus) Badge {
	switch status {
	case backend.EventStatusActive:
		return Badge{Color: "green"}
	case backend.EventStatusCompleted:
		return Badge{Color: "blue"}
	case backend.EventStatusDraft:
		return Badge{Color: "yellow"}
	case backend.EventStatusCancelled:
		return Badge{Color: "red"}
	default:
		return Badge{Color: "gray"}
	}
}

func ParticipationBadge(status backend.ParticipationStatus) Badge {
	switch status {
	case backend.ParticipationConfirmed:
		return Badge{Color: "green", Icon: "check-circle"}
	case backend.ParticipationPending:
		return Badge{Color: "orange", Icon: "hourglass-half"}
	case backend.ParticipationRejected:
		return Badge{Color: "red", Icon: "times"}
	case backend.ParticipationCancelled:
		return Badge{Color: "gray", Icon: "times"}
	default:
		return Badge{Color: "gray"}
	}
}
