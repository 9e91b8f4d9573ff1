// Package ge reads the live trade-post UI out of the host client and exposes
// it behind the schemas.GrandExchange contract. Every widget lookup is a
// snapshot; a component the host unmounts between frames simply comes back nil.
package ge

import (
	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
)

// -- Component and Variable IDs --

// Interface groups owned by the host client.
const (
	GroupGrandExchange = 465
	GroupChatbox       = 162

	// The trade-post swaps the inventory to its own interface group while it
	// is open; the standard group is the fallback.
	GroupInventoryGE = 467
	GroupInventory   = 149
)

// Children of the grand-exchange group.
const (
	ChildWindowRoot        = 5
	ChildBackButton        = 4
	ChildCollectButton     = 6
	ChildFirstSlot         = 7 // eight offer slots, children 7 through 14
	ChildOfferContainer    = 24
	ChildOfferTypeSelector = 25
	ChildSetQuantity       = 26
	ChildSetQuantityAll    = 27
	ChildSetPrice          = 28
	ChildConfirmButton     = 29
)

// SlotCount is the number of offer slots on the home screen.
const SlotCount = 8

// CreateOfferChild is the "create new offer" button inside a slot widget.
const CreateOfferChild = 3

// ChildSearchResults is the item-search results container in the chatbox group.
const ChildSearchResults = 50

// Live client variables.
const (
	VarbitOfferType     = 4397 // 1 while a sell offer is being created
	VarbitOfferQuantity = 4396
	VarbitOfferPrice    = 4398
	VarpCurrentItem     = 1151 // schemas.ItemNone while no item is selected
	VarcSearchInput     = 335
)

// GrandExchange is the concrete schemas.GrandExchange backed by a GameClient.
type GrandExchange struct {
	client schemas.GameClient
}

// New wraps the client. The adapter is stateless; it is safe to share.
func New(client schemas.GameClient) *GrandExchange {
	return &GrandExchange{client: client}
}

// -- Screen predicates --

// Open reports whether any trade-post screen is showing.
func (g *GrandExchange) Open() bool {
	return visible(g.client.Widget(GroupGrandExchange, ChildWindowRoot))
}

// HomeScreenOpen reports the multi-slot overview screen.
func (g *GrandExchange) HomeScreenOpen() bool {
	return g.Open() && !visible(g.client.Widget(GroupGrandExchange, ChildOfferContainer))
}

// SlotOpen reports the single-offer creation screen.
func (g *GrandExchange) SlotOpen() bool {
	return g.Open() && visible(g.client.Widget(GroupGrandExchange, ChildOfferContainer))
}

// -- Widget lookups --

func (g *GrandExchange) CollectButton() schemas.Widget {
	return g.client.Widget(GroupGrandExchange, ChildCollectButton)
}

// SlotWidget returns the home-screen widget for an offer slot, nil for an
// out-of-range index.
func (g *GrandExchange) SlotWidget(slot int) schemas.Widget {
	if slot < 0 || slot >= SlotCount {
		return nil
	}
	return g.client.Widget(GroupGrandExchange, ChildFirstSlot+slot)
}

// BuyButton returns the "create new offer" button inside a slot widget.
func (g *GrandExchange) BuyButton(slot int) schemas.Widget {
	slotWidget := g.SlotWidget(slot)
	if slotWidget == nil {
		return nil
	}
	return slotWidget.Child(CreateOfferChild)
}

func (g *GrandExchange) OfferTypeWidget() schemas.Widget {
	return g.client.Widget(GroupGrandExchange, ChildOfferTypeSelector)
}

func (g *GrandExchange) ConfirmButton() schemas.Widget {
	return g.client.Widget(GroupGrandExchange, ChildConfirmButton)
}

func (g *GrandExchange) BackButton() schemas.Widget {
	return g.client.Widget(GroupGrandExchange, ChildBackButton)
}

func (g *GrandExchange) SetPriceButton() schemas.Widget {
	return g.client.Widget(GroupGrandExchange, ChildSetPrice)
}

func (g *GrandExchange) SetQuantityButton() schemas.Widget {
	return g.client.Widget(GroupGrandExchange, ChildSetQuantity)
}

func (g *GrandExchange) SetQuantityAllButton() schemas.Widget {
	return g.client.Widget(GroupGrandExchange, ChildSetQuantityAll)
}

// -- Live offer state --

// OfferType decodes the offer-creation type variable.
func (g *GrandExchange) OfferType() schemas.SuggestionType {
	if g.client.VarbitValue(VarbitOfferType) == 1 {
		return schemas.SuggestionSell
	}
	return schemas.SuggestionBuy
}

// SelectedItemID returns the item chosen for the offer under construction.
func (g *GrandExchange) SelectedItemID() int {
	return g.client.VarpValue(VarpCurrentItem)
}

func (g *GrandExchange) OfferPrice() int {
	return g.client.VarbitValue(VarbitOfferPrice)
}

func (g *GrandExchange) OfferQuantity() int {
	return g.client.VarbitValue(VarbitOfferQuantity)
}

// -- Item search --

// SearchOpen reports whether the item-search results panel is visible.
func (g *GrandExchange) SearchOpen() bool {
	return visible(g.client.Widget(GroupChatbox, ChildSearchResults))
}

// SearchText returns the text currently typed into the search input.
func (g *GrandExchange) SearchText() string {
	return g.client.VarcStrValue(VarcSearchInput)
}

// SearchResults returns the result entries, nil when the panel is closed.
func (g *GrandExchange) SearchResults() []schemas.Widget {
	results := g.client.Widget(GroupChatbox, ChildSearchResults)
	if results == nil {
		return nil
	}
	return results.DynamicChildren()
}

// visible treats a nil handle as hidden.
func visible(w schemas.Widget) bool {
	return w != nil && !w.Hidden()
}
