package reducer

import (
	"testing"

	"event-portal/core/backend"
	"event-portal/modules/session/entity"

	"github.com/google/uuid"
)

func participant() *backend.User {
	return &backend.User{
		ID:    1,
		Email: "p@example.com",
		Role:  backend.RoleParticipant,
		Participations: []backend.Participation{
			{ID: 10, EventID: 42, Status: backend.ParticipationPending},
			{ID: 11, EventID: 7, Status: backend.ParticipationConfirmed},
		},
	}
}

func TestSignInAndOut(t *testing.T) {
	t.Parallel()

	s := entity.Session{ID: uuid.New(), Hydrated: true}
	signed := SignIn(s, participant(), "tok")
	if !signed.SignedIn() || signed.Token != "tok" {
		t.Fatalf("SignIn = %+v", signed)
	}
	if s.User != nil {
		t.Fatal("SignIn mutated its input")
	}

	signed = SetCompany(signed, &backend.Company{ID: 3})
	signed = SetEvents(signed, &backend.EventPage{Total: 1})

	out := SignOut(signed)
	if out.User != nil || out.Token != "" || out.Company != nil || out.Events != nil {
		t.Fatalf("SignOut left state behind: %+v", out)
	}
	if out.ID != s.ID || !out.Hydrated {
		t.Fatal("SignOut lost the session identity")
	}
}

func TestReplaceUserKeepsToken(t *testing.T) {
	t.Parallel()

	s := SignIn(entity.Session{}, participant(), "tok")
	renamed := &backend.User{ID: 1, Role: backend.RoleParticipant, Name: "Renamed"}

	next := ReplaceUser(s, renamed)
	if next.Token != "tok" {
		t.Fatalf("token = %q, want tok", next.Token)
	}
	if next.User.Name != "Renamed" {
		t.Fatalf("name = %q", next.User.Name)
	}
	if s.User.Name != "" {
		t.Fatal("ReplaceUser mutated the previous state")
	}
}

func TestRecordJoinReplacesSameEvent(t *testing.T) {
	t.Parallel()

	s := SignIn(entity.Session{}, participant(), "tok")
	next := RecordJoin(s, backend.Participation{ID: 20, EventID: 42, Status: backend.ParticipationConfirmed})

	if got := len(next.User.Participations); got != 2 {
		t.Fatalf("participations = %d, want 2", got)
	}
	for _, p := range next.User.Participations {
		if p.EventID == 42 && p.Status != backend.ParticipationConfirmed {
			t.Fatalf("event 42 status = %s, want CONFIRMED", p.Status)
		}
	}
	if s.User.Participations[0].Status != backend.ParticipationPending {
		t.Fatal("RecordJoin mutated the previous participations")
	}

	added := RecordJoin(next, backend.Participation{ID: 21, EventID: 99, Status: backend.ParticipationPending})
	if len(added.User.Participations) != 3 {
		t.Fatalf("participations = %d, want 3", len(added.User.Participations))
	}
}

func TestRecordJoinWithoutUser(t *testing.T) {
	t.Parallel()

	s := entity.Session{Hydrated: true}
	if next := RecordJoin(s, backend.Participation{EventID: 1}); next.User != nil {
		t.Fatal("RecordJoin created a user")
	}
}

func TestAssignCompany(t *testing.T) {
	t.Parallel()

	admin := &backend.User{ID: 2, Role: backend.RoleAdmin}
	s := SignIn(entity.Session{}, admin, "tok")
	next := AssignCompany(s, 5)

	if !next.User.HasCompany() || *next.User.CompanyID != 5 {
		t.Fatalf("company id = %v", next.User.CompanyID)
	}
	if s.User.HasCompany() {
		t.Fatal("AssignCompany mutated the previous state")
	}
}

func TestSetEventsCopiesItems(t *testing.T) {
	t.Parallel()

	page := &backend.EventPage{Items: []backend.Event{{ID: 1, Title: "a"}}}
	s := SetEvents(entity.Session{}, page)
	page.Items[0].Title = "changed"

	if s.Events.Items[0].Title != "a" {
		t.Fatal("SetEvents kept a reference to the caller's items")
	}

	cleared := ClearEvents(s)
	if cleared.Events != nil || s.Events == nil {
		t.Fatal("ClearEvents should only clear the returned value")
	}
}
