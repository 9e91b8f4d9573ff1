// File: internal/ge/grandexchange_test.go
package ge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/mocks"
)

func TestScreenPredicates(t *testing.T) {
	client := mocks.NewFakeClient()
	gx := New(client)

	assert.False(t, gx.Open(), "no widgets mounted")
	assert.False(t, gx.HomeScreenOpen())
	assert.False(t, gx.SlotOpen())

	root := mocks.NewFakeWidget(480, 300)
	client.SetWidget(GroupGrandExchange, ChildWindowRoot, root)
	assert.True(t, gx.Open())
	assert.True(t, gx.HomeScreenOpen(), "no offer container means home screen")
	assert.False(t, gx.SlotOpen())

	container := mocks.NewFakeWidget(400, 200)
	client.SetWidget(GroupGrandExchange, ChildOfferContainer, container)
	assert.False(t, gx.HomeScreenOpen())
	assert.True(t, gx.SlotOpen())

	// A hidden container counts as closed.
	container.Hide()
	assert.True(t, gx.HomeScreenOpen())
	assert.False(t, gx.SlotOpen())

	root.Hide()
	assert.False(t, gx.Open())
	assert.False(t, gx.HomeScreenOpen())
	assert.False(t, gx.SlotOpen())
}

func TestSlotWidgetRange(t *testing.T) {
	client := mocks.NewFakeClient()
	gx := New(client)

	slot := mocks.NewFakeWidget(115, 110)
	client.SetWidget(GroupGrandExchange, ChildFirstSlot+2, slot)

	assert.Same(t, slot, gx.SlotWidget(2))
	assert.Nil(t, gx.SlotWidget(-1))
	assert.Nil(t, gx.SlotWidget(SlotCount))
}

func TestBuyButtonLooksUpSlotChild(t *testing.T) {
	client := mocks.NewFakeClient()
	gx := New(client)

	buy := mocks.NewFakeWidget(45, 44)
	slot := mocks.NewFakeWidget(115, 110)
	slot.Children = []schemas.Widget{nil, nil, nil, buy}
	client.SetWidget(GroupGrandExchange, ChildFirstSlot, slot)

	assert.Same(t, buy, gx.BuyButton(0))
	assert.Nil(t, gx.BuyButton(1), "unmounted slot has no button")
}

func TestOfferTypeDecoding(t *testing.T) {
	client := mocks.NewFakeClient()
	gx := New(client)

	assert.Equal(t, schemas.SuggestionBuy, gx.OfferType(), "zero value decodes as buy")

	client.SetVarbit(VarbitOfferType, 1)
	assert.Equal(t, schemas.SuggestionSell, gx.OfferType())
}

func TestLiveOfferState(t *testing.T) {
	client := mocks.NewFakeClient()
	gx := New(client)

	client.SetVarp(VarpCurrentItem, 4151)
	client.SetVarbit(VarbitOfferPrice, 1_250_000)
	client.SetVarbit(VarbitOfferQuantity, 3)

	assert.Equal(t, 4151, gx.SelectedItemID())
	assert.Equal(t, 1_250_000, gx.OfferPrice())
	assert.Equal(t, 3, gx.OfferQuantity())
}

func TestSearchState(t *testing.T) {
	client := mocks.NewFakeClient()
	gx := New(client)

	assert.False(t, gx.SearchOpen())
	assert.Nil(t, gx.SearchResults())
	assert.Empty(t, gx.SearchText())

	entry := mocks.NewFakeWidget(140, 14).WithItem(4151)
	panel := mocks.NewFakeWidget(400, 120)
	panel.Dynamic = []schemas.Widget{entry}
	client.SetWidget(GroupChatbox, ChildSearchResults, panel)
	client.SetVarcStr(VarcSearchInput, "whip")

	assert.True(t, gx.SearchOpen())
	assert.Equal(t, "whip", gx.SearchText())

	results := gx.SearchResults()
	require.Len(t, results, 1)
	assert.Same(t, entry, results[0])
}
