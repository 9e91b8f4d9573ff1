// Package offers remembers what the player last did on the offer screens:
// which slot they viewed (and at what price) and whether an offer was just
// submitted. The highlight engine uses the former to judge not-yet-submitted
// offers and the latter to avoid flashing stale highlights.
package offers

import (
	"sync"
	"time"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
)

// DefaultPlacedDebounce covers roughly two game ticks, long enough for the
// server to move the offer into a slot and fire the next state event.
const DefaultPlacedDebounce = 1200 * time.Millisecond

// Tracker is the concrete schemas.OfferTracker.
type Tracker struct {
	mu sync.Mutex

	viewedItemID int
	viewedPrice  int
	placedAt     time.Time
	debounce     time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewTracker returns a Tracker with no viewed slot and the default debounce.
func NewTracker() *Tracker {
	return &Tracker{
		viewedItemID: schemas.ItemNone,
		debounce:     DefaultPlacedDebounce,
		now:          time.Now,
	}
}

// SetViewedSlot records the offer the player navigated into.
func (t *Tracker) SetViewedSlot(itemID, price int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.viewedItemID = itemID
	t.viewedPrice = price
}

// ClearViewedSlot forgets the remembered slot, e.g. when the player returns
// to the home screen.
func (t *Tracker) ClearViewedSlot() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.viewedItemID = schemas.ItemNone
	t.viewedPrice = 0
}

// MarkOfferPlaced starts the post-submission debounce window.
func (t *Tracker) MarkOfferPlaced() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.placedAt = t.now()
}

// ViewedSlotItemID returns the remembered item id, schemas.ItemNone when no
// slot has been viewed.
func (t *Tracker) ViewedSlotItemID() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.viewedItemID
}

// ViewedSlotPrice returns the remembered price, 0 when unknown.
func (t *Tracker) ViewedSlotPrice() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.viewedPrice
}

// OfferJustPlaced reports whether we are still inside the debounce window.
func (t *Tracker) OfferJustPlaced() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.placedAt.IsZero() {
		return false
	}
	return t.now().Sub(t.placedAt) < t.debounce
}

// SetDebounce overrides the debounce window; zero disables it.
func (t *Tracker) SetDebounce(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.debounce = d
}

// SetClock overrides the time source. Tests use this to step through the
// debounce window deterministically.
func (t *Tracker) SetClock(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}
