// Package account tracks the state of the player's offer slots and answers
// the two questions the highlight engine asks: is a collect action pending,
// and is there a free slot for a new offer.
package account

import (
	"sync"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
)

// SlotCount is the number of grand-exchange offer slots an account has.
const SlotCount = 8

// SlotState describes one offer slot.
type SlotState int

const (
	// SlotEmpty has no offer and can accept a new one.
	SlotEmpty SlotState = iota
	// SlotActive has an offer still trading.
	SlotActive
	// SlotDone has a completed or cancelled offer whose proceeds are still
	// waiting to be collected.
	SlotDone
)

// Status is the mutable per-account slot model. Writers are the host's
// offer-event handlers; readers are the highlight engine and the UI.
type Status struct {
	mu    sync.RWMutex
	slots [SlotCount]SlotState
}

// NewStatus returns a Status with every slot empty.
func NewStatus() *Status {
	return &Status{}
}

// SetSlot records the state of one slot. Out-of-range indexes are ignored;
// offer events for slots this model does not know about carry no information.
func (s *Status) SetSlot(index int, state SlotState) {
	if index < 0 || index >= SlotCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[index] = state
}

// Slot returns the recorded state of a slot, SlotEmpty when out of range.
func (s *Status) Slot(index int) SlotState {
	if index < 0 || index >= SlotCount {
		return SlotEmpty
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[index]
}

// Reset clears all slots, e.g. on logout.
func (s *Status) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = [SlotCount]SlotState{}
}

// CollectNeeded reports whether pending collections stand between the player
// and the suggested action. A wait suggestion asks for nothing, so nothing
// blocks it.
func (s *Status) CollectNeeded(suggestion *schemas.Suggestion) bool {
	if suggestion != nil && suggestion.Type == schemas.SuggestionWait {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, state := range s.slots {
		if state == SlotDone {
			return true
		}
	}
	return false
}

// EmptySlot returns the lowest-numbered free slot, or schemas.SlotNone.
func (s *Status) EmptySlot() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, state := range s.slots {
		if state == SlotEmpty {
			return i
		}
	}
	return schemas.SlotNone
}
