package schemas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sizedWidget struct{ w, h int }

func (s sizedWidget) Hidden() bool              { return false }
func (s sizedWidget) Width() int                { return s.w }
func (s sizedWidget) Height() int               { return s.h }
func (s sizedWidget) ItemID() int               { return ItemNone }
func (s sizedWidget) Child(int) Widget          { return nil }
func (s sizedWidget) DynamicChildren() []Widget { return nil }

func TestBounds(t *testing.T) {
	r := Bounds(sizedWidget{w: 115, h: 110})
	assert.Equal(t, Rect{Width: 115, Height: 110}, r)
	assert.Zero(t, r.X)
	assert.Zero(t, r.Y)
}

func TestNewHighlightRequestAssignsUniqueHandles(t *testing.T) {
	w := sizedWidget{w: 10, h: 10}
	fn := ColorFunc(func() color.RGBA { return color.RGBA{R: 0xFF, A: 0xFF} })

	a := NewHighlightRequest(w, fn, Bounds(w))
	b := NewHighlightRequest(w, fn, Bounds(w))

	assert.NotEqual(t, a.ID, b.ID, "every overlay gets its own deregistration handle")
	assert.Equal(t, w, a.Widget)
	assert.Equal(t, Rect{Width: 10, Height: 10}, a.Rect)
}
