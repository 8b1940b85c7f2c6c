package session

import (
	"time"

	"event-portal/core/cache"
	"event-portal/core/config"
	"event-portal/core/constants"
	"event-portal/core/database"
	"event-portal/core/queue"
	"event-portal/modules/session/repository"
	"event-portal/modules/session/service"
	"event-portal/modules/session/task"
)

// GetService wires the session stores for the middleware and the other modules.
func GetService(db database.Database, c cache.Cache, cfg config.SessionConfig) *service.SessionService {
	records := repository.NewRecordRepository(c, cfg.TTL)
	snapshots := repository.NewSnapshotRepository(&db)
	return service.NewSessionService(records, snapshots, cfg.Secret, cfg.TTL)
}

// RegisterTasks schedules the hourly sweep of orphaned snapshots.
func RegisterTasks(worker queue.Server, sessions *service.SessionService) error {
	worker.Register(constants.TaskSessionSweep, task.NewSweepHandler(sessions).Handle)
	return worker.Schedule(constants.SessionSweepSpec, queue.Task{Type: constants.TaskSessionSweep}, queue.EnqueueOption{
		Queue:     constants.QueueMaintenance,
		UniqueTTL: time.Hour,
	})
}
