package notifications

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrQueueFull         = errors.New("notification queue is full")
	ErrDispatcherStopped = errors.New("notification dispatcher is stopped")
)

// Task is a unit of background delivery.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

type dispatcher struct {
	tasks        chan Task
	workers      int
	drainTimeout time.Duration
	logger       *zap.SugaredLogger

	mu      sync.RWMutex
	stopped bool
}

type Dispatcher interface {
	// Enqueue never blocks: a full queue is reported with ErrQueueFull.
	Enqueue(task Task) error
	// Run executes tasks until ctx is cancelled, then keeps draining the queue
	// for at most the drain timeout.
	Run(ctx context.Context) error
}

func NewDispatcher(workers, queueSize int, drainTimeout time.Duration, logger *zap.SugaredLogger) Dispatcher {
	if workers < 1 {
		workers = 1
	}

	return &dispatcher{
		tasks:        make(chan Task, queueSize),
		workers:      workers,
		drainTimeout: drainTimeout,
		logger:       logger,
	}
}

func (d *dispatcher) Enqueue(task Task) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrDispatcherStopped
	}

	select {
	case d.tasks <- task:
		return nil
	default:
		d.logger.Warnw("notification queue is full", "task", task.Name)
		return ErrQueueFull
	}
}

func (d *dispatcher) Run(ctx context.Context) error {
	taskCtx, cancelTasks := context.WithCancel(context.Background())
	defer cancelTasks()

	g := errgroup.Group{}
	for i := 0; i < d.workers; i++ {
		g.Go(func() error {
			d.work(taskCtx)
			return nil
		})
	}

	<-ctx.Done()

	d.mu.Lock()
	d.stopped = true
	close(d.tasks)
	d.mu.Unlock()

	d.logger.Infow("draining notification queue", "pending", len(d.tasks), "timeout", d.drainTimeout)
	drain := time.AfterFunc(d.drainTimeout, cancelTasks)
	defer drain.Stop()

	return g.Wait()
}

func (d *dispatcher) work(ctx context.Context) {
	for task := range d.tasks {
		if ctx.Err() != nil {
			d.logger.Warnw("dropped notification task", "task", task.Name)
			continue
		}

		d.execute(ctx, task)
	}
}

func (d *dispatcher) execute(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorw("notification task panicked", "task", task.Name, "panic", r)
		}
	}()

	started := time.Now()
	if err := task.Run(ctx); err != nil {
		d.logger.Errorw("notification task failed", "task", task.Name, "error", err)
		return
	}

	d.logger.Debugw("notification task done", "task", task.Name, "duration", time.Since(started))
}
