// File: internal/highlight/trigger.go
package highlight

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Trigger coalesces bursty host events (widget loads, varbit changes, offer
// events) into rate-limited redraw evaluations on a single goroutine. Notify
// never blocks; notifications arriving while a redraw is pending fold into
// that one evaluation.
type Trigger struct {
	notify  chan struct{}
	limiter *rate.Limiter
	redraw  func()
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewTrigger starts the evaluation goroutine. minInterval is the smallest
// spacing between redraws; zero or negative disables the limit.
func NewTrigger(redraw func(), minInterval time.Duration) *Trigger {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &Trigger{
		notify:  make(chan struct{}, 1),
		limiter: rate.NewLimiter(limit, 1),
		redraw:  redraw,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go t.run(ctx)
	return t
}

func (t *Trigger) run(ctx context.Context) {
	defer close(t.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.notify:
		}
		if err := t.limiter.Wait(ctx); err != nil {
			return
		}
		t.redraw()
	}
}

// Notify requests a redraw evaluation. Duplicate notifications before the
// next evaluation coalesce into one.
func (t *Trigger) Notify() {
	select {
	case t.notify <- struct{}{}:
	default:
	}
}

// Close stops the evaluation goroutine and waits for it to exit. No redraw
// runs after Close returns.
func (t *Trigger) Close() {
	t.cancel()
	<-t.done
}
