package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"event-portal/core/backend"
	"event-portal/core/constants"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/core/utils"
	"event-portal/modules/session/entity"
	"event-portal/modules/session/repository"

	"github.com/google/uuid"
)

type SessionServiceInterface interface {
	Open() entity.Session
	Load(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Commit(ctx context.Context, prev, next entity.Session) *errors.AppError
	Clear(ctx context.Context, s entity.Session) *errors.AppError
	IssueToken(s entity.Session) (string, *errors.AppError)
	ParseToken(token string) (uuid.UUID, error)
}

type SessionService struct {
	records   repository.RecordRepositoryInterface
	snapshots repository.SnapshotRepositoryInterface
	secret    string
	ttl       time.Duration

	sweepBatch int
}

func NewSessionService(records repository.RecordRepositoryInterface, snapshots repository.SnapshotRepositoryInterface, secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		records:   records,
		snapshots: snapshots,
		secret:    secret,
		ttl:       ttl,

		sweepBatch: constants.SessionSweepBatch,
	}
}

// Open starts an empty, already hydrated session.
func (s *SessionService) Open() entity.Session {
	return entity.Session{ID: uuid.New(), Hydrated: true}
}

// Load hydrates a persisted session. An unknown id yields an anonymous session.
// A store failure is returned as is; the caller keeps the session unhydrated.
func (s *SessionService) Load(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	record, err := s.records.GetRecord(ctx, id)
	if err != nil {
		logger.Error("SessionService:Load:GetRecord", "session", id, "error", err)
		return nil, err
	}

	sess := &entity.Session{ID: id, Hydrated: true}
	if record == nil || record.User == nil {
		return sess, nil
	}
	sess.User = record.User
	sess.Token = record.Token

	var company backend.Company
	ok, err := s.loadSnapshot(ctx, id, constants.SnapshotCompany, &company)
	if err != nil {
		return nil, err
	}
	if ok {
		sess.Company = &company
	}

	var events backend.EventPage
	ok, err = s.loadSnapshot(ctx, id, constants.SnapshotEvents, &events)
	if err != nil {
		return nil, err
	}
	if ok {
		sess.Events = &events
	}
	return sess, nil
}

func (s *SessionService) loadSnapshot(ctx context.Context, id uuid.UUID, kind string, dest any) (bool, error) {
	snap, err := s.snapshots.GetSnapshot(ctx, id, kind)
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, nil
	}
	if err := json.Unmarshal([]byte(snap.Payload), dest); err != nil {
		// a snapshot that no longer decodes is dropped, not fatal
		logger.Warn("SessionService:LoadSnapshot:Decode", "kind", kind, "error", err)
		return false, nil
	}
	return true, nil
}

// Commit persists the slices that differ between prev and next. Reducers replace
// slices whole, so pointer identity is enough to detect a change.
func (s *SessionService) Commit(ctx context.Context, prev, next entity.Session) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	var errs []error

	if prev.User != next.User || prev.Token != next.Token {
		if next.User == nil {
			errs = append(errs, s.records.DeleteRecord(ctx, next.ID))
		} else {
			errs = append(errs, s.records.SaveRecord(ctx, next.ID, &entity.Record{User: next.User, Token: next.Token}))
		}
	}
	if prev.Company != next.Company {
		errs = append(errs, s.writeSnapshot(ctx, next.ID, constants.SnapshotCompany, next.Company, next.Company == nil))
	}
	if prev.Events != next.Events {
		errs = append(errs, s.writeSnapshot(ctx, next.ID, constants.SnapshotEvents, next.Events, next.Events == nil))
	}

	if err := stderrors.Join(errs...); err != nil {
		logger.Error("SessionService:Commit:Error", "session", next.ID, "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to save session", err)
	}
	return nil
}

func (s *SessionService) writeSnapshot(ctx context.Context, id uuid.UUID, kind string, value any, clear bool) error {
	if clear {
		return s.snapshots.DeleteSnapshot(ctx, id, kind)
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", kind, err)
	}
	return s.snapshots.SaveSnapshot(ctx, &entity.Snapshot{SessionID: id, Kind: kind, Payload: string(b)})
}

// Clear removes each persisted slice on its own. A failing store does not keep the others.
func (s *SessionService) Clear(ctx context.Context, sess entity.Session) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	err := stderrors.Join(
		s.records.DeleteRecord(ctx, sess.ID),
		s.snapshots.DeleteSnapshot(ctx, sess.ID, constants.SnapshotCompany),
		s.snapshots.DeleteSnapshot(ctx, sess.ID, constants.SnapshotEvents),
	)
	if err != nil {
		logger.Error("SessionService:Clear:Error", "session", sess.ID, "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to clear session", err)
	}
	return nil
}

// Sweep drops the snapshots of sessions that no longer have a user record. Only
// sessions whose snapshots are all older than before are looked at.
func (s *SessionService) Sweep(ctx context.Context, before time.Time) (int, error) {
	removed, kept := 0, 0
	for {
		// Deleted sessions leave the result set, so only the kept ones are skipped.
		ids, err := s.snapshots.ListStaleSessions(ctx, before, s.sweepBatch, kept)
		if err != nil {
			return removed, fmt.Errorf("list stale sessions: %w", err)
		}

		for _, id := range ids {
			record, err := s.records.GetRecord(ctx, id)
			if err != nil {
				return removed, fmt.Errorf("check session %s: %w", id, err)
			}
			if record != nil {
				kept++
				continue
			}
			if err := s.snapshots.DeleteSession(ctx, id); err != nil {
				return removed, fmt.Errorf("delete session %s: %w", id, err)
			}
			removed++
		}
		if len(ids) < s.sweepBatch {
			break
		}
	}
	logger.Info("SessionService:Sweep:Done", "kept", kept, "removed", removed)
	return removed, nil
}

func (s *SessionService) IssueToken(sess entity.Session) (string, *errors.AppError) {
	token, err := utils.GenerateSessionToken(s.secret, sess.ID, s.ttl)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to issue session token", err)
	}
	return token, nil
}

func (s *SessionService) ParseToken(token string) (uuid.UUID, error) {
	claims, err := utils.ParseSessionToken(s.secret, token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.SessionID, nil
}
