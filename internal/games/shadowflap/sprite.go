package shadowflap

import (
	"github.com/vovakirdan/shadowflap/internal/config"
	"github.com/vovakirdan/shadowflap/internal/core"
)

// Sprite yields the collision box of a visual anchored at a point.
type Sprite interface {
	BoundsAt(x, y float64) core.Box
}

// SpriteSize is a Sprite whose box is centred on the anchor.
type SpriteSize struct {
	W, H float64
}

// BoundsAt returns the box of size W×H centred on (x, y).
func (s SpriteSize) BoundsAt(x, y float64) core.Box {
	return core.BoxAround(x, y, s.W, s.H)
}

// Visual identifies what should be drawn for an entity.
type Visual int

const (
	VisualFlyerWingsDown Visual = iota
	VisualFlyerWingsUp
	VisualFlyerPoweredWingsDown
	VisualFlyerPoweredWingsUp
	VisualSoftPipe
	VisualHardPipe
	VisualHazard
	VisualRock
	VisualBomb
	VisualHeartFull
	VisualHeartEmpty
)

// Canvas receives draw requests. It never feeds back into the simulation.
type Canvas interface {
	Present(v Visual, x, y float64, flipped bool)
}

// Bounds is the queryable size of the playfield.
type Bounds interface {
	Width() int
	Height() int
}

// World is the logical playfield in world units.
type World struct {
	W, H int
}

func (w World) Width() int  { return w.W }
func (w World) Height() int { return w.H }

// Sprites holds the collision size of every visual kind.
type Sprites struct {
	Flyer  SpriteSize
	Pipe   SpriteSize
	Hazard SpriteSize
	Rock   SpriteSize
	Bomb   SpriteSize
}

// SpritesFromConfig converts configured sizes.
func SpritesFromConfig(c config.SpriteConfig) Sprites {
	return Sprites{
		Flyer:  SpriteSize(c.Flyer),
		Pipe:   SpriteSize(c.Pipe),
		Hazard: SpriteSize(c.Hazard),
		Rock:   SpriteSize(c.Rock),
		Bomb:   SpriteSize(c.Bomb),
	}
}

// For returns the sprite used for a visual. Hearts are HUD glyphs and
// occupy a single unit.
func (s Sprites) For(v Visual) Sprite {
	switch v {
	case VisualFlyerWingsDown, VisualFlyerWingsUp, VisualFlyerPoweredWingsDown, VisualFlyerPoweredWingsUp:
		return s.Flyer
	case VisualSoftPipe, VisualHardPipe:
		return s.Pipe
	case VisualHazard:
		return s.Hazard
	case VisualRock:
		return s.Rock
	case VisualBomb:
		return s.Bomb
	default:
		return SpriteSize{W: 1, H: 1}
	}
}

// Movable is an entity integrated once per frame.
type Movable interface {
	Move(p WorldParameters)
}

// Collidable is an entity that exposes collision boxes.
type Collidable interface {
	Boxes() []core.Box
}

// firstHit returns the index of the first box of b that intersects any box of a.
func firstHit(a, b Collidable) (int, bool) {
	mine := a.Boxes()
	for i, theirs := range b.Boxes() {
		for _, m := range mine {
			if m.Intersects(theirs) {
				return i, true
			}
		}
	}
	return -1, false
}
