package schemas

import (
	"image/color"

	"github.com/google/uuid"
)

// ColorFunc produces the highlight color for the current render frame. The
// renderer re-invokes it once per frame, which is what makes pulsing and live
// color-scheme changes work without the decision engine owning a clock.
type ColorFunc func() color.RGBA

// HighlightRequest asks the renderer to outline a rectangle within a widget.
// Rect is relative to the widget's origin.
type HighlightRequest struct {
	ID     uuid.UUID
	Widget Widget
	Color  ColorFunc
	Rect   Rect
}

// NewHighlightRequest assigns a fresh handle id so the renderer can
// deregister the exact overlay later.
func NewHighlightRequest(w Widget, fn ColorFunc, rect Rect) *HighlightRequest {
	return &HighlightRequest{ID: uuid.New(), Widget: w, Color: fn, Rect: rect}
}

// OverlayRenderer is the host-owned overlay pipeline. Register and Deregister
// must only be called from the client (UI) thread.
type OverlayRenderer interface {
	Register(req *HighlightRequest)
	Deregister(req *HighlightRequest)
}
