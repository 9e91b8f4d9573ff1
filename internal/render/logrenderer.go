// Package render holds renderer adapters. The real overlay pipeline belongs
// to the host; LogRenderer stands in for it when the plugin runs outside a
// client, logging each overlay mutation instead of painting it.
package render

import (
	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
	"go.uber.org/zap"
)

// LogRenderer is a schemas.OverlayRenderer that writes every register and
// deregister to the log. Used by the simulate command.
type LogRenderer struct {
	log *zap.Logger
}

func NewLogRenderer(logger *zap.Logger) *LogRenderer {
	return &LogRenderer{log: logger.Named("render")}
}

func (r *LogRenderer) Register(req *schemas.HighlightRequest) {
	c := req.Color()
	r.log.Info("Highlight on",
		zap.String("id", req.ID.String()),
		zap.Int("x", req.Rect.X),
		zap.Int("y", req.Rect.Y),
		zap.Int("width", req.Rect.Width),
		zap.Int("height", req.Rect.Height),
		zap.Uint8("r", c.R), zap.Uint8("g", c.G), zap.Uint8("b", c.B))
}

func (r *LogRenderer) Deregister(req *schemas.HighlightRequest) {
	r.log.Debug("Highlight off", zap.String("id", req.ID.String()))
}
