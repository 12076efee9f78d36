package shadowflap

import (
	"github.com/vovakirdan/shadowflap/internal/config"
	"github.com/vovakirdan/shadowflap/internal/core"
)

// Hazard is the flame pair emitted by a hard obstacle. It sits just inside
// both gap edges and blinks: visible for StayFrames, hidden for GapFrames.
type Hazard struct {
	age    int
	cycle  config.HazardConfig
	sprite Sprite
}

// NewHazard returns a hazard at the start of its visible phase.
func NewHazard(cycle config.HazardConfig, sprite Sprite) *Hazard {
	return &Hazard{cycle: cycle, sprite: sprite}
}

// Tick advances the visibility timer by one frame.
func (h *Hazard) Tick() {
	h.age++
}

// Visible reports whether the hazard is in its visible phase.
func (h *Hazard) Visible() bool {
	return h.age%(h.cycle.StayFrames+h.cycle.GapFrames) < h.cycle.StayFrames
}

// anchors returns the centres of the top and bottom flame.
func (h *Hazard) anchors(x, gapTop, gapBottom float64) (top, bottom core.Box) {
	size := h.sprite.BoundsAt(0, 0)
	top = h.sprite.BoundsAt(x, gapTop+size.H/2)
	bottom = h.sprite.BoundsAt(x, gapBottom-size.H/2)
	return top, bottom
}

// BoxesAt returns the flame boxes for an obstacle at x, or nil while hidden.
func (h *Hazard) BoxesAt(x, gapTop, gapBottom float64) []core.Box {
	if !h.Visible() {
		return nil
	}
	top, bottom := h.anchors(x, gapTop, gapBottom)
	return []core.Box{top, bottom}
}
