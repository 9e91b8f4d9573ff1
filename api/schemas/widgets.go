package schemas

// Rect is pixel geometry. Highlight rectangles are relative to the target
// widget's origin.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Widget is a live handle into the host client's UI tree. Handles stay valid
// only as long as the host keeps the underlying component mounted; every
// lookup that hands one out may return nil on the next frame.
type Widget interface {
	// Hidden reports whether the widget or any of its ancestors is hidden.
	Hidden() bool
	Width() int
	Height() int
	// ItemID returns the item rendered in this widget, or ItemNone.
	ItemID() int
	// Child returns the static child at the given index, or nil.
	Child(index int) Widget
	// DynamicChildren returns the script-created children, possibly nil.
	DynamicChildren() []Widget
}

// Bounds returns the widget's full extent as an origin-relative rectangle.
func Bounds(w Widget) Rect {
	return Rect{Width: w.Width(), Height: w.Height()}
}

// GameClient exposes the live host-client state the plugin reads. All methods
// are synchronous snapshots; none of them block.
type GameClient interface {
	// Widget resolves a component by interface group and child id, nil when
	// the component is not currently mounted.
	Widget(group, child int) Widget
	// VarbitValue reads a server-controlled bit variable.
	VarbitValue(id int) int
	// VarpValue reads a server-controlled player variable.
	VarpValue(id int) int
	// VarcStrValue reads a client string variable (e.g. chat input text).
	VarcStrValue(id int) string
	// ItemDef returns the definition for an item id.
	ItemDef(itemID int) ItemDef
}
