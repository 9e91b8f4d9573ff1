// Canonical collaborator contracts for the plugin. Concrete implementations
// live under internal/; depending on these interfaces keeps the highlight
// engine testable against hand-written fakes.
package schemas

// SuggestionSource hands out the current suggestion, or the reason there is
// none. Both reads are independent snapshots.
type SuggestionSource interface {
	// Suggestion returns the active suggestion, nil when none exists.
	Suggestion() *Suggestion
	// SuggestionError returns the backend's last failure, nil when healthy.
	SuggestionError() error
}

// GrandExchange observes the trade-post UI. Every widget getter may return
// nil at any time; callers treat absence as "skip", never as an error.
type GrandExchange interface {
	// Open reports whether any trade-post screen is showing.
	Open() bool
	// HomeScreenOpen reports the multi-slot overview screen.
	HomeScreenOpen() bool
	// SlotOpen reports the single-offer creation screen.
	SlotOpen() bool

	CollectButton() Widget
	SlotWidget(slot int) Widget
	BuyButton(slot int) Widget
	OfferTypeWidget() Widget
	ConfirmButton() Widget
	BackButton() Widget
	SetPriceButton() Widget
	SetQuantityButton() Widget
	SetQuantityAllButton() Widget

	// OfferType decodes the live offer-creation type variable.
	OfferType() SuggestionType
	// SelectedItemID decodes the live selected-item variable, ItemNone when
	// nothing is selected.
	SelectedItemID() int
	// OfferPrice and OfferQuantity read the offer under construction.
	OfferPrice() int
	OfferQuantity() int

	// SearchOpen reports whether the item-search results panel is showing.
	SearchOpen() bool
	// SearchText returns the current text in the item-search input box.
	SearchText() string
	// SearchResults returns the search panel's result entries, nil when the
	// panel is closed.
	SearchResults() []Widget
}

// AccountState answers the two account questions the highlight engine needs.
type AccountState interface {
	// CollectNeeded reports whether pending collections block acting on the
	// given suggestion.
	CollectNeeded(s *Suggestion) bool
	// EmptySlot returns the index of a free offer slot, or SlotNone.
	EmptySlot() int
}

// SlotNone is the sentinel for "no empty offer slot".
const SlotNone = -1

// OfferTracker remembers what the player last did with the offer screens.
type OfferTracker interface {
	// ViewedSlotItemID is the item id of the previously viewed slot, ItemNone
	// when no slot has been viewed.
	ViewedSlotItemID() int
	// ViewedSlotPrice is the price configured on that slot, 0 when unknown.
	ViewedSlotPrice() int
	// OfferJustPlaced reports the short debounce window after an offer is
	// submitted, during which stale highlights must not flash.
	OfferJustPlaced() bool
}
