package repository

import (
	"context"
	"database/sql"
	"time"

	"event-portal/core/database"
	"event-portal/core/logger"
	"event-portal/modules/session/entity"

	"github.com/google/uuid"
)

type SnapshotRepositoryInterface interface {
	GetSnapshot(ctx context.Context, sessionID uuid.UUID, kind string) (*entity.Snapshot, error)
	SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error
	DeleteSnapshot(ctx context.Context, sessionID uuid.UUID, kind string) error
	ListStaleSessions(ctx context.Context, before time.Time, limit, offset int) ([]uuid.UUID, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
}

type SnapshotRepository struct {
	DB database.IDatabase
}

func NewSnapshotRepository(db database.IDatabase) *SnapshotRepository {
	return &SnapshotRepository{DB: db}
}

func (r *SnapshotRepository) GetSnapshot(ctx context.Context, sessionID uuid.UUID, kind string) (*entity.Snapshot, error) {
	query := `
		SELECT session_id, kind, payload, updated_at
		FROM session_snapshots
		WHERE session_id = $1 AND kind = $2
	`

	var snapshot entity.Snapshot
	err := r.DB.GetContext(ctx, &snapshot, query, sessionID, kind)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SnapshotRepository:GetSnapshot", "kind", kind, "error", err)
		return nil, err
	}
	return &snapshot, nil
}

func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error {
	query := `
		INSERT INTO session_snapshots (session_id, kind, payload, updated_at)
		VALUES (:session_id, :kind, :payload, NOW())
		ON CONFLICT (session_id, kind)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	if _, err := r.DB.NamedExecContext(ctx, query, snapshot); err != nil {
		logger.Error("SnapshotRepository:SaveSnapshot", "kind", snapshot.Kind, "error", err)
		return err
	}
	return nil
}

func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, sessionID uuid.UUID, kind string) error {
	query := `DELETE FROM session_snapshots WHERE session_id = $1 AND kind = $2`

	if err := r.DB.ExecContext(ctx, query, sessionID, kind); err != nil {
		logger.Error("SnapshotRepository:DeleteSnapshot", "kind", kind, "error", err)
		return err
	}
	return nil
}

// ListStaleSessions returns sessions whose newest snapshot is older than before, oldest first.
func (r *SnapshotRepository) ListStaleSessions(ctx context.Context, before time.Time, limit, offset int) ([]uuid.UUID, error) {
	query := `
		SELECT session_id
		FROM session_snapshots
		GROUP BY session_id
		HAVING MAX(updated_at) < $1
		ORDER BY MAX(updated_at), session_id
		LIMIT $2 OFFSET $3
	`

	var ids []uuid.UUID
	if err := r.DB.SelectContext(ctx, &ids, query, before, limit, offset); err != nil {
		logger.Error("SnapshotRepository:ListStaleSessions", "error", err)
		return nil, err
	}
	return ids, nil
}

func (r *SnapshotRepository) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	query := `DELETE FROM session_snapshots WHERE session_id = $1`

	if err := r.DB.ExecContext(ctx, query, sessionID); err != nil {
		logger.Error("SnapshotRepository:DeleteSession", "session", sessionID, "error", err)
		return err
	}
	return nil
}
