// File: internal/mocks/renderer.go
package mocks

import (
	"sync"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
	"github.com/google/uuid"
)

// RecordingRenderer captures overlay registrations in order so tests can
// assert the exact highlight set after flushing the client-thread queue.
type RecordingRenderer struct {
	mu      sync.Mutex
	ordered []*schemas.HighlightRequest
	byID    map[uuid.UUID]*schemas.HighlightRequest
}

func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{byID: make(map[uuid.UUID]*schemas.HighlightRequest)}
}

func (r *RecordingRenderer) Register(req *schemas.HighlightRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ordered = append(r.ordered, req)
	r.byID[req.ID] = req
}

func (r *RecordingRenderer) Deregister(req *schemas.HighlightRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, req.ID)
	for i, active := range r.ordered {
		if active.ID == req.ID {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
}

// Active returns the currently registered highlights in registration order.
func (r *RecordingRenderer) Active() []*schemas.HighlightRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*schemas.HighlightRequest, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Count returns the number of registered highlights.
func (r *RecordingRenderer) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ordered)
}
