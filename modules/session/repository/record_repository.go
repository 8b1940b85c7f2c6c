package repository

import (
	"context"
	"errors"
	"time"

	"event-portal/core/cache"
	"event-portal/core/constants"
	"event-portal/modules/session/entity"

	"github.com/google/uuid"
)

type RecordRepositoryInterface interface {
	GetRecord(ctx context.Context, sessionID uuid.UUID) (*entity.Record, error)
	SaveRecord(ctx context.Context, sessionID uuid.UUID, record *entity.Record) error
	DeleteRecord(ctx context.Context, sessionID uuid.UUID) error
}

// RecordRepository keeps the user slice in redis under session:<id>.
type RecordRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRecordRepository(c cache.Cache, ttl time.Duration) *RecordRepository {
	return &RecordRepository{cache: c, ttl: ttl}
}

func recordKey(sessionID uuid.UUID) string {
	return constants.RedisKeySession + sessionID.String()
}

// GetRecord returns nil, nil for an unknown session.
func (r *RecordRepository) GetRecord(ctx context.Context, sessionID uuid.UUID) (*entity.Record, error) {
	var record entity.Record
	err := r.cache.GetJSON(ctx, recordKey(sessionID), &record)
	if errors.Is(err, cache.ErrMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordRepository) SaveRecord(ctx context.Context, sessionID uuid.UUID, record *entity.Record) error {
	return r.cache.SetJSON(ctx, recordKey(sessionID), record, r.ttl)
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, sessionID uuid.UUID) error {
	_, err := r.cache.Del(ctx, recordKey(sessionID))
	return err
}
