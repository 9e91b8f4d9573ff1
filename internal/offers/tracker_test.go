// File: internal/offers/tracker_test.go
package offers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
)

func TestViewedSlotLifecycle(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, schemas.ItemNone, tr.ViewedSlotItemID())
	assert.Zero(t, tr.ViewedSlotPrice())

	tr.SetViewedSlot(4151, 1_250_000)
	assert.Equal(t, 4151, tr.ViewedSlotItemID())
	assert.Equal(t, 1_250_000, tr.ViewedSlotPrice())

	tr.ClearViewedSlot()
	assert.Equal(t, schemas.ItemNone, tr.ViewedSlotItemID())
	assert.Zero(t, tr.ViewedSlotPrice())
}

func TestOfferJustPlacedDebounce(t *testing.T) {
	tr := NewTracker()
	now := time.Unix(1000, 0)
	tr.SetClock(func() time.Time { return now })

	assert.False(t, tr.OfferJustPlaced(), "nothing placed yet")

	tr.MarkOfferPlaced()
	assert.True(t, tr.OfferJustPlaced())

	now = now.Add(DefaultPlacedDebounce - time.Millisecond)
	assert.True(t, tr.OfferJustPlaced(), "still inside the window")

	now = now.Add(2 * time.Millisecond)
	assert.False(t, tr.OfferJustPlaced(), "window elapsed")
}

func TestZeroDebounceDisablesWindow(t *testing.T) {
	tr := NewTracker()
	tr.SetDebounce(0)
	tr.MarkOfferPlaced()
	assert.False(t, tr.OfferJustPlaced())
}
