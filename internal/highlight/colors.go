// File: internal/highlight/colors.go
package highlight

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/config"
)

// Pulsing alpha range for the blue/red palettes.
const (
	pulseAlphaMin = 0x60
	pulseAlphaMax = 0xE0
)

// inventoryAlpha is the fixed opacity of the solid inventory highlight.
const inventoryAlpha = 0xB4

// Palette turns the configured highlight colors into live ColorFuncs. The
// blue and red palettes pulse; the renderer re-invokes the returned function
// every frame, so the oscillation needs no timer of its own.
type Palette struct {
	blue      color.RGBA
	blueDump  color.RGBA
	red       color.RGBA
	redDump   color.RGBA
	inventory color.RGBA
	period    time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewPalette parses the configured hex colors. Unparseable values fall back
// to the defaults rather than failing; a broken color scheme should never
// disable the plugin.
func NewPalette(cfg config.HighlightConfig) *Palette {
	defaults := config.NewDefaultConfig().Highlight()
	period := cfg.PulsePeriod
	if period <= 0 {
		period = defaults.PulsePeriod
	}
	return &Palette{
		blue:      parseHex(cfg.Blue, parseHex(defaults.Blue, color.RGBA{B: 0xFF})),
		blueDump:  parseHex(cfg.BlueDump, parseHex(defaults.BlueDump, color.RGBA{B: 0xFF})),
		red:       parseHex(cfg.Red, parseHex(defaults.Red, color.RGBA{R: 0xFF})),
		redDump:   parseHex(cfg.RedDump, parseHex(defaults.RedDump, color.RGBA{R: 0xFF})),
		inventory: parseHex(cfg.InventorySlot, parseHex(defaults.InventorySlot, color.RGBA{R: 0xF0, G: 0xE6, B: 0x8C})),
		period:    period,
		now:       time.Now,
	}
}

// Blue returns the pulsing "act here" palette, in its dump shade when the
// suggestion is a liquidation.
func (p *Palette) Blue(dump bool) schemas.ColorFunc {
	base := p.blue
	if dump {
		base = p.blueDump
	}
	return p.pulsing(base)
}

// Red returns the pulsing "abort" palette, in its dump shade when the
// suggestion is a liquidation.
func (p *Palette) Red(dump bool) schemas.ColorFunc {
	base := p.red
	if dump {
		base = p.redDump
	}
	return p.pulsing(base)
}

// InventorySolid returns the non-animated inventory-slot highlight.
func (p *Palette) InventorySolid() schemas.ColorFunc {
	c := p.inventory
	c.A = inventoryAlpha
	return func() color.RGBA { return c }
}

// pulsing oscillates the alpha channel over the configured period.
func (p *Palette) pulsing(base color.RGBA) schemas.ColorFunc {
	return func() color.RGBA {
		elapsed := p.now().UnixNano() % p.period.Nanoseconds()
		phase := 2 * math.Pi * float64(elapsed) / float64(p.period.Nanoseconds())
		span := float64(pulseAlphaMax - pulseAlphaMin)
		base.A = uint8(pulseAlphaMin + span*(0.5+0.5*math.Sin(phase)))
		return base
	}
}

// parseHex reads "#RRGGBB", returning fallback on any malformed input.
func parseHex(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}
}
