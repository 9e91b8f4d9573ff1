// Package mocks provides hand-written fakes for the host-client collaborator
// contracts. Tests and the simulate harness build widget trees with them.
package mocks

import (
	"sync"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
)

// FakeWidget is a scriptable schemas.Widget.
type FakeWidget struct {
	HiddenFlag bool
	W, H       int
	Item       int
	Children   []schemas.Widget
	Dynamic    []schemas.Widget
}

// NewFakeWidget returns a visible widget with the given size.
func NewFakeWidget(width, height int) *FakeWidget {
	return &FakeWidget{W: width, H: height, Item: schemas.ItemNone}
}

// WithItem sets the rendered item id and returns the widget for chaining.
func (w *FakeWidget) WithItem(itemID int) *FakeWidget {
	w.Item = itemID
	return w
}

// Hide marks the widget hidden and returns it for chaining.
func (w *FakeWidget) Hide() *FakeWidget {
	w.HiddenFlag = true
	return w
}

func (w *FakeWidget) Hidden() bool { return w.HiddenFlag }
func (w *FakeWidget) Width() int   { return w.W }
func (w *FakeWidget) Height() int  { return w.H }
func (w *FakeWidget) ItemID() int  { return w.Item }

func (w *FakeWidget) Child(index int) schemas.Widget {
	if index < 0 || index >= len(w.Children) {
		return nil
	}
	return w.Children[index]
}

func (w *FakeWidget) DynamicChildren() []schemas.Widget { return w.Dynamic }

// componentKey addresses a widget by interface group and child id.
type componentKey struct{ group, child int }

// FakeClient is a scriptable schemas.GameClient.
type FakeClient struct {
	mu       sync.Mutex
	widgets  map[componentKey]schemas.Widget
	varbits  map[int]int
	varps    map[int]int
	varcs    map[int]string
	itemDefs map[int]schemas.ItemDef
}

// NewFakeClient returns an empty client; every lookup misses until scripted.
func NewFakeClient() *FakeClient {
	return &FakeClient{
		widgets:  make(map[componentKey]schemas.Widget),
		varbits:  make(map[int]int),
		varps:    make(map[int]int),
		varcs:    make(map[int]string),
		itemDefs: make(map[int]schemas.ItemDef),
	}
}

// SetWidget mounts a widget at (group, child); nil unmounts it.
func (c *FakeClient) SetWidget(group, child int, w schemas.Widget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := componentKey{group, child}
	if w == nil {
		delete(c.widgets, key)
		return
	}
	c.widgets[key] = w
}

func (c *FakeClient) SetVarbit(id, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.varbits[id] = value
}

func (c *FakeClient) SetVarp(id, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.varps[id] = value
}

func (c *FakeClient) SetVarcStr(id int, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.varcs[id] = value
}

// SetItemDef scripts an item definition.
func (c *FakeClient) SetItemDef(def schemas.ItemDef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.itemDefs[def.ID] = def
}

func (c *FakeClient) Widget(group, child int) schemas.Widget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.widgets[componentKey{group, child}]
}

func (c *FakeClient) VarbitValue(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.varbits[id]
}

func (c *FakeClient) VarpValue(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.varps[id]
}

func (c *FakeClient) VarcStrValue(id int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.varcs[id]
}

func (c *FakeClient) ItemDef(itemID int) schemas.ItemDef {
	c.mu.Lock()
	defer c.mu.Unlock()
	if def, ok := c.itemDefs[itemID]; ok {
		return def
	}
	// Unscripted items behave like ordinary unnoted items.
	return schemas.ItemDef{ID: itemID, LinkedID: schemas.ItemNone}
}
