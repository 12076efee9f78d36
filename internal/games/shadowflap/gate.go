package shadowflap

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/shadowflap/internal/config"
	"github.com/vovakirdan/shadowflap/internal/core"
)

// Material is the closed set of obstacle materials.
type Material int

const (
	MaterialSoft Material = iota // plastic: any projectile destroys it
	MaterialHard                 // steel: emits a hazard, only bombs destroy it
)

func (m Material) String() string {
	if m == MaterialHard {
		return config.MaterialHard
	}
	return config.MaterialSoft
}

// ParseMaterial maps a config name to a Material.
func ParseMaterial(name string) (Material, bool) {
	switch name {
	case config.MaterialSoft:
		return MaterialSoft, true
	case config.MaterialHard:
		return MaterialHard, true
	default:
		return MaterialSoft, false
	}
}

// GateParts is everything an obstacle needs besides its position.
type GateParts struct {
	GapHeight float64
	Pipe      Sprite
	Hazard    Sprite
	Cycle     config.HazardConfig
}

// GateObstacle is a top and bottom pipe segment with a passable gap.
// X is the horizontal centre; the gap spans [gapTop, gapTop+GapHeight].
type GateObstacle struct {
	X float64

	gapTop    float64
	gapHeight float64
	material  Material
	pipe      Sprite
	hazard    *Hazard // non-nil only for hard obstacles
	destroyed bool
}

// NewGateObstacle creates an obstacle. Hard obstacles get their own hazard.
func NewGateObstacle(x, gapTop float64, m Material, parts GateParts) *GateObstacle {
	g := &GateObstacle{
		X:         x,
		gapTop:    gapTop,
		gapHeight: parts.GapHeight,
		material:  m,
		pipe:      parts.Pipe,
	}
	if m == MaterialHard {
		g.hazard = NewHazard(parts.Cycle, parts.Hazard)
	}
	return g
}

func (g *GateObstacle) Material() Material { return g.material }
func (g *GateObstacle) Hazard() *Hazard    { return g.hazard }
func (g *GateObstacle) GapTop() float64    { return g.gapTop }
func (g *GateObstacle) GapBottom() float64 { return g.gapTop + g.gapHeight }
func (g *GateObstacle) Destroyed() bool    { return g.destroyed }

// Move scrolls the obstacle left and advances its hazard timer.
func (g *GateObstacle) Move(p WorldParameters) {
	g.X -= p.AmbientVelocity
	if g.hazard != nil {
		g.hazard.Tick()
	}
}

// SegmentCount is the number of pipe boxes at the head of Boxes.
func (g *GateObstacle) SegmentCount() int {
	return 2
}

// Segments returns the top and bottom pipe boxes.
func (g *GateObstacle) Segments() (top, bottom core.Box) {
	h := g.pipe.BoundsAt(0, 0).H
	top = g.pipe.BoundsAt(g.X, g.gapTop-h/2)
	bottom = g.pipe.BoundsAt(g.X, g.GapBottom()+h/2)
	return top, bottom
}

// Boxes returns the pipe segments followed by the hazard boxes while the
// hazard is visible. A hidden hazard contributes nothing.
func (g *GateObstacle) Boxes() []core.Box {
	top, bottom := g.Segments()
	boxes := []core.Box{top, bottom}
	if g.hazard != nil {
		boxes = append(boxes, g.hazard.BoxesAt(g.X, g.gapTop, g.GapBottom())...)
	}
	return boxes
}

// CollideProjectile reports whether a projectile of the given kind destroys
// this obstacle. Soft obstacles fall to anything, hard ones only to bombs.
func (g *GateObstacle) CollideProjectile(kind ProjectileKind) bool {
	return g.material == MaterialSoft || kind.DestroysHard()
}

// OffLeft reports whether the obstacle has scrolled fully past the left edge.
func (g *GateObstacle) OffLeft() bool {
	top, _ := g.Segments()
	return top.Right() <= 0
}

// ObstacleQueue keeps obstacles in arrival order, split into those the
// flyer has not yet passed and those already scored but still on screen.
// Removal is deferred: Remove flags an obstacle and Compact drops it.
type ObstacleQueue struct {
	pending []*GateObstacle
	passed  []*GateObstacle
}

// Push appends a freshly spawned obstacle.
func (q *ObstacleQueue) Push(g *GateObstacle) {
	q.pending = append(q.pending, g)
}

// Head returns the nearest live obstacle not yet passed, or nil.
func (q *ObstacleQueue) Head() *GateObstacle {
	head, ok := lo.Find(q.pending, func(g *GateObstacle) bool { return !g.destroyed })
	if !ok {
		return nil
	}
	return head
}

// Remove flags an obstacle as destroyed. Reports false if it already was.
func (q *ObstacleQueue) Remove(g *GateObstacle) bool {
	if g.destroyed {
		return false
	}
	g.destroyed = true
	return true
}

// Pending returns live obstacles not yet passed.
func (q *ObstacleQueue) Pending() []*GateObstacle {
	return lo.Reject(q.pending, func(g *GateObstacle, _ int) bool { return g.destroyed })
}

// Passed returns live obstacles that have been scored.
func (q *ObstacleQueue) Passed() []*GateObstacle {
	return lo.Reject(q.passed, func(g *GateObstacle, _ int) bool { return g.destroyed })
}

// All returns every live obstacle, pending first.
func (q *ObstacleQueue) All() []*GateObstacle {
	return append(q.Pending(), q.Passed()...)
}

// AdvancePassed moves every live pending obstacle whose centre is left of x
// into the passed collection and returns how many moved.
func (q *ObstacleQueue) AdvancePassed(x float64) int {
	crossed := lo.Filter(q.pending, func(g *GateObstacle, _ int) bool { return !g.destroyed && g.X < x })
	if len(crossed) == 0 {
		return 0
	}
	q.pending = lo.Reject(q.pending, func(g *GateObstacle, _ int) bool { return !g.destroyed && g.X < x })
	q.passed = append(q.passed, crossed...)
	return len(crossed)
}

// Compact drops destroyed obstacles and passed obstacles that left the screen.
func (q *ObstacleQueue) Compact() {
	q.pending = lo.Reject(q.pending, func(g *GateObstacle, _ int) bool { return g.destroyed })
	q.passed = lo.Reject(q.passed, func(g *GateObstacle, _ int) bool { return g.destroyed || g.OffLeft() })
}

// Len returns the number of live obstacles.
func (q *ObstacleQueue) Len() int {
	return len(q.Pending()) + len(q.Passed())
}
