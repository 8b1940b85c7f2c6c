package service

import (
	"context"
	"testing"

	"event-portal/core/backend"
	"event-portal/core/errors"
	"event-portal/modules/session/entity"
	"event-portal/modules/user/dto"

	"github.com/google/uuid"
)

type fakeUsers struct {
	renamed   string
	changed   *backend.ChangePasswordInput
	deleted   []int64
	deleteErr error
}

func (f *fakeUsers) UpdateMe(ctx context.Context, token string, name string) (*backend.User, error) {
	f.renamed = name
	companyID := int64(7)
	return &backend.User{ID: 1, Name: name, Role: backend.RoleOrganizer, CompanyID: &companyID}, nil
}

func (f *fakeUsers) ChangePassword(ctx context.Context, token string, in *backend.ChangePasswordInput) error {
	f.changed = in
	if in.OldPassword != "right" {
		return &backend.Error{Status: 400, Message: "Old password is incorrect"}
	}
	return nil
}

func (f *fakeUsers) DeleteUser(ctx context.Context, token string, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type fakeSessions struct {
	commits []entity.Session
	cleared []uuid.UUID
}

func (f *fakeSessions) Open() entity.Session { return entity.Session{ID: uuid.New(), Hydrated: true} }

func (f *fakeSessions) Load(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	return &entity.Session{ID: id, Hydrated: true}, nil
}

func (f *fakeSessions) Commit(ctx context.Context, prev, next entity.Session) *errors.AppError {
	f.commits = append(f.commits, next)
	return nil
}

func (f *fakeSessions) Clear(ctx context.Context, s entity.Session) *errors.AppError {
	f.cleared = append(f.cleared, s.ID)
	return nil
}

func (f *fakeSessions) IssueToken(s entity.Session) (string, *errors.AppError) { return "portal", nil }

func (f *fakeSessions) ParseToken(token string) (uuid.UUID, error) { return uuid.Nil, nil }

type fakeRefresher struct {
	refreshed []entity.Session
}

func (f *fakeRefresher) Refresh(ctx context.Context, sess entity.Session) (entity.Session, *errors.AppError) {
	f.refreshed = append(f.refreshed, sess)
	return sess, nil
}

func session(role backend.Role) entity.Session {
	return entity.Session{ID: uuid.New(), Hydrated: true, Token: "api-token", User: &backend.User{ID: 1, Name: "Old", Role: role}}
}

func TestUpdateMe(t *testing.T) {
	t.Parallel()

	users, sessions, companies := &fakeUsers{}, &fakeSessions{}, &fakeRefresher{}
	svc := NewUserService(users, sessions, companies)

	resp, appErr := svc.UpdateMe(context.Background(), session(backend.RoleOrganizer), &dto.UpdateMeRequest{Name: "New Name"})
	if appErr != nil {
		t.Fatalf("UpdateMe: %v", appErr)
	}
	if resp.Name != "New Name" || users.renamed != "New Name" {
		t.Fatalf("resp = %+v", resp)
	}
	if len(sessions.commits) != 1 || sessions.commits[0].User.Name != "New Name" || sessions.commits[0].Token != "api-token" {
		t.Fatalf("commits = %+v", sessions.commits)
	}
	if len(companies.refreshed) != 1 {
		t.Fatalf("company refreshed %d times, want 1", len(companies.refreshed))
	}
}

func TestChangePasswordSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	svc := NewUserService(&fakeUsers{}, &fakeSessions{}, nil)
	appErr := svc.ChangePassword(context.Background(), session(backend.RoleParticipant), &dto.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "new-secret"})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput || appErr.Message != "Old password is incorrect" {
		t.Fatalf("appErr = %v", appErr)
	}
}

func TestDeleteMe(t *testing.T) {
	t.Parallel()

	users, sessions := &fakeUsers{}, &fakeSessions{}
	svc := NewUserService(users, sessions, nil)
	sess := session(backend.RoleParticipant)

	if appErr := svc.DeleteMe(context.Background(), sess); appErr != nil {
		t.Fatalf("DeleteMe: %v", appErr)
	}
	if len(users.deleted) != 1 || users.deleted[0] != 1 {
		t.Fatalf("deleted = %v", users.deleted)
	}
	if len(sessions.cleared) != 1 || sessions.cleared[0] != sess.ID {
		t.Fatalf("cleared = %v", sessions.cleared)
	}

	failing := &fakeUsers{deleteErr: &backend.Error{Status: 500}}
	sessions = &fakeSessions{}
	if appErr := NewUserService(failing, sessions, nil).DeleteMe(context.Background(), sess); appErr == nil {
		t.Fatal("expected the delete error")
	}
	if len(sessions.cleared) != 0 {
		t.Fatal("session cleared although the account still exists")
	}
}
