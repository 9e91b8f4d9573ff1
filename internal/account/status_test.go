// File: internal/account/status_test.go
package account

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
)

func TestSlotRoundTripAndRange(t *testing.T) {
	s := NewStatus()

	s.SetSlot(3, SlotActive)
	assert.Equal(t, SlotActive, s.Slot(3))
	assert.Equal(t, SlotEmpty, s.Slot(0))

	// Out-of-range writes and reads are silent no-ops.
	s.SetSlot(-1, SlotDone)
	s.SetSlot(SlotCount, SlotDone)
	assert.Equal(t, SlotEmpty, s.Slot(-1))
	assert.Equal(t, SlotEmpty, s.Slot(SlotCount))
	assert.False(t, s.CollectNeeded(nil))
}

func TestCollectNeeded(t *testing.T) {
	s := NewStatus()
	assert.False(t, s.CollectNeeded(nil))

	s.SetSlot(5, SlotActive)
	assert.False(t, s.CollectNeeded(nil), "active offers have nothing to collect")

	s.SetSlot(5, SlotDone)
	assert.True(t, s.CollectNeeded(nil))
	assert.True(t, s.CollectNeeded(&schemas.Suggestion{Type: schemas.SuggestionBuy}))
	assert.False(t, s.CollectNeeded(&schemas.Suggestion{Type: schemas.SuggestionWait}),
		"waiting asks for nothing, so pending collections do not block it")
}

func TestEmptySlot(t *testing.T) {
	s := NewStatus()
	assert.Equal(t, 0, s.EmptySlot())

	s.SetSlot(0, SlotActive)
	s.SetSlot(1, SlotDone)
	assert.Equal(t, 2, s.EmptySlot(), "lowest free slot wins")

	for i := 0; i < SlotCount; i++ {
		s.SetSlot(i, SlotActive)
	}
	assert.Equal(t, schemas.SlotNone, s.EmptySlot())
}

func TestReset(t *testing.T) {
	s := NewStatus()
	for i := 0; i < SlotCount; i++ {
		s.SetSlot(i, SlotDone)
	}
	s.Reset()

	assert.Equal(t, 0, s.EmptySlot())
	assert.False(t, s.CollectNeeded(nil))
}
