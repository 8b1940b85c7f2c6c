package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"event-portal/core/config"
	"event-portal/core/constants"
	"event-portal/core/logger"

	"github.com/hibiken/asynq"
)

// ===================== Client =====================

type AsynqClient struct {
	client    *asynq.Client
	retention asynqRetention
}

var _ Client = (*AsynqClient)(nil)

func NewAsynqClient(redisURL string, cfg config.QueueConfig) (*AsynqClient, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("asynq: parse redis url: %w", err)
	}
	return &AsynqClient{client: asynq.NewClient(opt), retention: asynqRetention(cfg.Retention)}, nil
}

func (a *AsynqClient) Enqueue(ctx context.Context, t Task, opt EnqueueOption) (string, error) {
	if t.Type == "" {
		return "", errors.New("asynq: task type is required")
	}
	info, err := a.client.EnqueueContext(ctx, asynq.NewTask(t.Type, t.Payload), a.retention.options(opt)...)
	if err != nil {
		return "", err
	}
	logger.Debug("AsynqClient:Enqueue:Done", "type", t.Type, "id", info.ID, "queue", info.Queue)
	return info.ID, nil
}

// IsDuplicate reports whether an enqueue was dropped by a uniqueness window.
func IsDuplicate(err error) bool {
	return errors.Is(err, asynq.ErrDuplicateTask)
}

func (a *AsynqClient) Close() error {
	return a.client.Close()
}

// asynqRetention is the configured default for EnqueueOption.Retention.
type asynqRetention time.Duration

// options maps an EnqueueOption to asynq. Every task runs at most once.
func (r asynqRetention) options(opt EnqueueOption) []asynq.Option {
	out := []asynq.Option{asynq.MaxRetry(0)}
	if opt.Queue != "" {
		out = append(out, asynq.Queue(opt.Queue))
	}
	if opt.UniqueTTL > 0 {
		out = append(out, asynq.Unique(opt.UniqueTTL))
	}
	if opt.Retention > 0 {
		out = append(out, asynq.Retention(opt.Retention))
	} else if r > 0 {
		out = append(out, asynq.Retention(time.Duration(r)))
	}
	if !opt.Deadline.IsZero() {
		out = append(out, asynq.Deadline(opt.Deadline))
	}
	return out
}

// ===================== Server =====================

type AsynqServer struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
	retention asynqRetention

	stopOnce sync.Once
	stopped  chan struct{}
}

var _ Server = (*AsynqServer)(nil)

func NewAsynqServer(redisURL string, cfg config.QueueConfig) (*AsynqServer, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("asynq: parse redis url: %w", err)
	}

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: max(cfg.Concurrency, 1),
		Queues: map[string]int{
			constants.QueueDefault:     max(cfg.DefaultWeight, 1),
			constants.QueueMaintenance: max(cfg.MaintenanceWeight, 1),
		},
		Logger: asynqLogger{},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("AsynqServer:Task:Error", "type", task.Type(), "error", err)
		}),
	})

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Logger:   asynqLogger{},
		Location: time.UTC,
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil && !IsDuplicate(err) {
				logger.Error("AsynqServer:Schedule:Enqueue", "error", err)
			}
		},
	})

	return &AsynqServer{
		server:    srv,
		scheduler: scheduler,
		mux:       asynq.NewServeMux(),
		retention: asynqRetention(cfg.Retention),
		stopped:   make(chan struct{}),
	}, nil
}

func (s *AsynqServer) Register(taskType string, h Handler) {
	s.mux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
		return h(ctx, Task{Type: t.Type(), Payload: t.Payload()})
	})
}

// Schedule enqueues t on every tick of cronspec ("@hourly", "*/5 * * * *").
// A periodic task cannot carry an absolute deadline.
func (s *AsynqServer) Schedule(cronspec string, t Task, opt EnqueueOption) error {
	if !opt.Deadline.IsZero() {
		return fmt.Errorf("asynq: periodic task %s cannot set a deadline", t.Type)
	}
	id, err := s.scheduler.Register(cronspec, asynq.NewTask(t.Type, t.Payload), s.retention.options(opt)...)
	if err != nil {
		return fmt.Errorf("asynq: schedule %s: %w", t.Type, err)
	}
	logger.Info("AsynqServer:Schedule:Registered", "type", t.Type, "cronspec", cronspec, "entry", id)
	return nil
}

// Run starts the worker and the scheduler and blocks until ctx ends or Stop is called.
func (s *AsynqServer) Run(ctx context.Context) error {
	if err := s.server.Start(s.mux); err != nil {
		return fmt.Errorf("asynq: start worker: %w", err)
	}
	if err := s.scheduler.Start(); err != nil {
		s.server.Shutdown()
		return fmt.Errorf("asynq: start scheduler: %w", err)
	}
	logger.Info("AsynqServer:Run:Started")

	select {
	case <-ctx.Done():
		return s.Stop(context.Background())
	case <-s.stopped:
		return nil
	}
}

// Stop shuts the scheduler down first, then waits for in-flight tasks. It is safe to call twice.
func (s *AsynqServer) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.stopOnce.Do(func() {
			s.scheduler.Shutdown()
			s.server.Shutdown()
			close(s.stopped)
			logger.Info("AsynqServer:Stop:Done")
		})
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("asynq: stop: %w", ctx.Err())
	}
}

// asynqLogger routes asynq's internal logging through the portal logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug("asynq", "detail", fmt.Sprint(args...)) }
func (asynqLogger) Info(args ...any)  { logger.Info("asynq", "detail", fmt.Sprint(args...)) }
func (asynqLogger) Warn(args ...any)  { logger.Warn("asynq", "detail", fmt.Sprint(args...)) }
func (asynqLogger) Error(args ...any) { logger.Error("asynq", "detail", fmt.Sprint(args...)) }
func (asynqLogger) Fatal(args ...any) { logger.Error("asynq:fatal", "detail", fmt.Sprint(args...)) }
