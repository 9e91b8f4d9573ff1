// Package suggestion holds the current trade suggestion. Whoever owns the
// backend connection feeds it; the highlight engine and the panels read it.
package suggestion

import (
	"sync"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
	"go.uber.org/zap"
)

// Manager is the concrete schemas.SuggestionSource. Suggestion and error are
// independent: a fetch failure leaves the previous suggestion in place but
// surfaces the error, which the highlight engine treats as "draw nothing".
type Manager struct {
	mu         sync.RWMutex
	current    *schemas.Suggestion
	lastErr    error
	generation uint64
	log        *zap.Logger
}

// NewManager returns an empty Manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{log: logger.Named("suggestion")}
}

// Suggestion returns the active suggestion, nil when none exists.
func (m *Manager) Suggestion() *schemas.Suggestion {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SuggestionError returns the last fetch failure, nil when healthy.
func (m *Manager) SuggestionError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// Generation increments every time the suggestion is replaced or cleared.
// Panels use it to tell "new suggestion" from "same suggestion re-read".
func (m *Manager) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

// Set replaces the suggestion wholesale and clears any previous error.
func (m *Manager) Set(s *schemas.Suggestion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
	m.lastErr = nil
	m.generation++
	if s != nil {
		m.log.Debug("Suggestion updated",
			zap.String("type", string(s.Type)),
			zap.Int("item_id", s.ItemID),
			zap.Int("price", s.Price),
			zap.Int("quantity", s.Quantity),
			zap.Bool("dump", s.Dump))
	}
}

// Clear drops the suggestion without recording an error.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	m.lastErr = nil
	m.generation++
}

// SetError records a backend failure. The suggestion content is not touched;
// the error alone suppresses highlighting until the next successful Set.
func (m *Manager) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = err
	if err != nil {
		m.log.Warn("Suggestion source reported an error", zap.Error(err))
	}
}
