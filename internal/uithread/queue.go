// Package uithread serializes overlay mutations onto a single goroutine, the
// way the host client confines UI work to its render thread. Submission is
// fire-and-forget; tasks run in FIFO order.
package uithread

import (
	"sync"

	"go.uber.org/zap"
)

// Queue is a single-consumer task queue. All submitted tasks execute on one
// dedicated goroutine in submission order.
type Queue struct {
	tasks chan func()
	done  chan struct{}
	log   *zap.Logger

	closeOnce sync.Once
}

// NewQueue starts the consumer goroutine. Close must be called to stop it.
func NewQueue(logger *zap.Logger, buffer int) *Queue {
	if buffer <= 0 {
		buffer = 64
	}
	q := &Queue{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
		log:   logger.Named("uithread"),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for task := range q.tasks {
		q.invoke(task)
	}
}

// invoke shields the consumer goroutine from panicking tasks; a broken overlay
// mutation must not take the whole queue down.
func (q *Queue) invoke(task func()) {
	defer func() {
		if r := recover(); r != nil {
			q.log.Error("Task panicked on client thread", zap.Any("panic", r))
		}
	}()
	task()
}

// Submit enqueues a task. It never blocks the caller's event handler: when the
// queue is saturated the task is dropped and logged, matching the host's
// best-effort invokeLater contract. Submitting after Close is a silent no-op.
func (q *Queue) Submit(task func()) {
	defer func() {
		// Sending on a closed channel panics; treat it as a dropped task.
		if r := recover(); r != nil {
			q.log.Debug("Task submitted after queue close")
		}
	}()
	select {
	case q.tasks <- task:
	case <-q.done:
	default:
		q.log.Warn("Client-thread queue saturated, dropping task")
	}
}

// Flush blocks until every task submitted before the call has executed.
// Intended for tests, which must not assert overlay state synchronously.
func (q *Queue) Flush() {
	var wg sync.WaitGroup
	wg.Add(1)
	q.Submit(wg.Done)
	wg.Wait()
}

// Close stops accepting tasks, drains the backlog, and waits for the consumer
// goroutine to exit.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.tasks)
	})
	<-q.done
}
