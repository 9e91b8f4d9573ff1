// Package highlight decides which trade-post widgets to highlight for the
// current suggestion. The decision logic is pure and synchronous; only the
// overlay-set mutation is deferred onto the client thread.
package highlight

import (
	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/config"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/uithread"
	"go.uber.org/zap"
)

// Fixed highlight rectangles, relative to the target widget's origin.
var (
	collectButtonRect = schemas.Rect{X: 2, Y: 1, Width: 81, Height: 18}
	buyButtonRect     = schemas.Rect{Width: 45, Height: 44}
	inventorySlotRect = schemas.Rect{Width: 34, Height: 32}
)

// Deps are the collaborators the controller reads. All of them are owned
// elsewhere; the controller only ever takes synchronous snapshots.
type Deps struct {
	Config   config.Interface
	Source   schemas.SuggestionSource
	Exchange schemas.GrandExchange
	Account  schemas.AccountState
	Offers   schemas.OfferTracker
	Client   schemas.GameClient
	Renderer schemas.OverlayRenderer
	Palette  *Palette
	Queue    *uithread.Queue
	Logger   *zap.Logger
}

// Controller owns the active highlight set. Redraw replaces the set wholesale
// on every call; nothing is diffed and stale highlights never survive a call.
type Controller struct {
	cfg      config.Interface
	source   schemas.SuggestionSource
	gx       schemas.GrandExchange
	account  schemas.AccountState
	offers   schemas.OfferTracker
	client   schemas.GameClient
	renderer schemas.OverlayRenderer
	palette  *Palette
	queue    *uithread.Queue
	log      *zap.Logger

	// active is confined to the client-thread queue; every read and write
	// happens inside a submitted task.
	active []*schemas.HighlightRequest
}

// NewController wires the collaborators together.
func NewController(deps Deps) *Controller {
	return &Controller{
		cfg:      deps.Config,
		source:   deps.Source,
		gx:       deps.Exchange,
		account:  deps.Account,
		offers:   deps.Offers,
		client:   deps.Client,
		renderer: deps.Renderer,
		palette:  deps.Palette,
		queue:    deps.Queue,
		log:      deps.Logger.Named("highlight"),
	}
}

// Redraw re-evaluates the full highlight set. It first clears everything,
// then stops at the first failing guard, then repopulates for whichever
// trade-post screen is open. Callers must not invoke it concurrently; the
// host's event loop delivers triggers serially.
func (c *Controller) Redraw() {
	c.RemoveAll()
	if !c.cfg.Highlight().Enabled {
		return
	}
	if !c.gx.Open() {
		return
	}
	if c.offers.OfferJustPlaced() {
		return
	}
	if c.source.SuggestionError() != nil {
		return
	}
	suggestion := c.source.Suggestion()
	if suggestion == nil {
		return
	}

	if c.gx.HomeScreenOpen() {
		c.drawHomeScreen(suggestion)
	} else if c.gx.SlotOpen() {
		c.drawOfferScreen(suggestion)
	}
}

// -- Home screen --

// drawHomeScreen handles the multi-slot overview. The branches are mutually
// exclusive and the first match wins.
func (c *Controller) drawHomeScreen(s *schemas.Suggestion) {
	blue := c.palette.Blue(s.Dump)
	red := c.palette.Red(s.Dump)

	switch {
	case c.account.CollectNeeded(s):
		c.addRect(c.gx.CollectButton(), blue, collectButtonRect)

	case s.Type == schemas.SuggestionAbort:
		c.add(c.gx.SlotWidget(s.BoxID), red)

	case s.Type == schemas.SuggestionBuy:
		slot := c.account.EmptySlot()
		if slot == schemas.SlotNone {
			return
		}
		if button := c.gx.BuyButton(slot); button != nil && !button.Hidden() {
			c.addRect(button, blue, buyButtonRect)
		}

	case s.Type == schemas.SuggestionSell:
		// The inventory slot gets a solid color, not the pulsing palette.
		if item := c.inventoryItemWidget(s.ItemID); item != nil && !item.Hidden() {
			c.addRect(item, c.palette.InventorySolid(), inventorySlotRect)
		}
	}
}

// -- Offer-creation screen --

func (c *Controller) drawOfferScreen(s *schemas.Suggestion) {
	if c.gx.OfferTypeWidget() == nil {
		return
	}
	blue := c.palette.Blue(s.Dump)

	offerTypeMatches := c.gx.OfferType() == s.Type
	currentItemID := c.gx.SelectedItemID()
	itemMatches := currentItemID == s.ItemID
	searchOpen := c.gx.SearchOpen()

	if offerTypeMatches {
		if itemMatches {
			if c.offerDetailsCorrect(s) {
				c.add(c.gx.ConfirmButton(), blue)
			} else {
				if c.gx.OfferPrice() != s.Price {
					c.add(c.gx.SetPriceButton(), blue)
				}
				c.highlightQuantity(s, blue)
			}
		} else if currentItemID == schemas.ItemNone && searchOpen {
			c.highlightItemInSearch(s, blue)
		}
	}

	// A previously configured offer unrelated to the fresh suggestion still
	// gets correctness feedback against the price the player set on it.
	if currentItemID != schemas.ItemNone &&
		(!offerTypeMatches || (!searchOpen && !itemMatches)) &&
		currentItemID == c.offers.ViewedSlotItemID() &&
		c.offers.ViewedSlotPrice() > 0 {
		if c.gx.OfferPrice() == c.offers.ViewedSlotPrice() {
			c.add(c.gx.ConfirmButton(), blue)
		} else {
			c.add(c.gx.SetPriceButton(), blue)
		}
	}

	if c.shouldHighlightBack(s, offerTypeMatches, itemMatches, currentItemID, searchOpen) {
		c.add(c.gx.BackButton(), blue)
	}
}

// shouldHighlightBack signals "what's on screen is not what should be
// confirmed, go back".
func (c *Controller) shouldHighlightBack(s *schemas.Suggestion, offerTypeMatches, itemMatches bool, currentItemID int, searchOpen bool) bool {
	if s.Type == schemas.SuggestionWait {
		return false
	}
	if !offerTypeMatches {
		return true
	}
	if !itemMatches && currentItemID != schemas.ItemNone && !searchOpen {
		return true
	}
	if s.Type == schemas.SuggestionSell && currentItemID == schemas.ItemNone {
		return true
	}
	if s.Type == schemas.SuggestionBuy && c.account.CollectNeeded(s) {
		return true
	}
	return false
}

// highlightItemInSearch scans the visible search results for the suggested
// item and highlights the first match only. While the player is typing a
// query the results are theirs, not ours; leave them alone.
func (c *Controller) highlightItemInSearch(s *schemas.Suggestion, fn schemas.ColorFunc) {
	if c.gx.SearchText() != "" {
		return
	}
	for _, entry := range c.gx.SearchResults() {
		if entry == nil || entry.Hidden() {
			continue
		}
		if entry.ItemID() == s.ItemID {
			c.addRect(entry, fn, schemas.Bounds(entry))
			return
		}
	}
}

// highlightQuantity picks the "set all" control when the suggestion's
// quantity is the use-maximum sentinel, the explicit quantity control
// otherwise.
func (c *Controller) highlightQuantity(s *schemas.Suggestion, fn schemas.ColorFunc) {
	if s.Quantity == 0 {
		c.add(c.gx.SetQuantityAllButton(), fn)
	} else {
		c.add(c.gx.SetQuantityButton(), fn)
	}
}

// offerDetailsCorrect compares the offer under construction against the
// suggestion. The quantity check is skipped for the use-maximum sentinel.
func (c *Controller) offerDetailsCorrect(s *schemas.Suggestion) bool {
	if s.Quantity != 0 && s.Quantity != c.gx.OfferQuantity() {
		return false
	}
	return s.Price == c.gx.OfferPrice()
}

// -- Highlight set management --

// add highlights the widget's full bounds.
func (c *Controller) add(w schemas.Widget, fn schemas.ColorFunc) {
	if w == nil || w.Hidden() {
		return
	}
	c.addRect(w, fn, schemas.Bounds(w))
}

// addRect registers a highlight for part of a widget. Absent or hidden
// widgets are a silent no-op; the decision runs now, the overlay mutation
// lands on the client thread.
func (c *Controller) addRect(w schemas.Widget, fn schemas.ColorFunc, rect schemas.Rect) {
	if w == nil || w.Hidden() {
		return
	}
	req := schemas.NewHighlightRequest(w, fn, rect)
	c.queue.Submit(func() {
		c.active = append(c.active, req)
		c.renderer.Register(req)
	})
}

// RemoveAll deregisters every active highlight. Safe to call with an empty
// set. The mutation is submitted to the client thread and not awaited, so
// rapid successive Redraw calls are only eventually consistent; the queue's
// FIFO order guarantees the last submission wins.
func (c *Controller) RemoveAll() {
	c.queue.Submit(func() {
		for _, req := range c.active {
			c.renderer.Deregister(req)
		}
		c.active = c.active[:0]
	})
}
