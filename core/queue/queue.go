package queue

import (
	"context"
	"time"
)

// Task is a background job. Portal tasks are never retried.
type Task struct {
	Type    string
	Payload []byte
}

type Handler func(ctx context.Context, task Task) error

// EnqueueOption controls how a task is queued. Zero values fall back to the adapter defaults.
type EnqueueOption struct {
	Queue     string
	UniqueTTL time.Duration // identical type and payload within the window are dropped
	Retention time.Duration // how long a finished task stays inspectable
	Deadline  time.Time     // the task is abandoned when it has not run by then
}

type Client interface {
	Enqueue(ctx context.Context, t Task, opt EnqueueOption) (id string, err error)
	Close() error
}

// Server runs registered handlers and periodic tasks until the context ends or Stop is called.
type Server interface {
	Register(taskType string, h Handler)
	Schedule(cronspec string, t Task, opt EnqueueOption) error
	Run(ctx context.Context) error
	Stop(ctx context.Context) error
}
