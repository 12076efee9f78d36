package shadowflap

import (
	"github.com/vovakirdan/shadowflap/internal/config"
	"github.com/vovakirdan/shadowflap/internal/core"
)

// maxPower is the highest flyer power level with its own look.
const maxPower = 1

// Flyer is the player-controlled entity. There is one per session and it
// survives level changes.
type Flyer struct {
	X, Y float64
	VY   float64

	cfg      config.FlyerConfig
	sprite   Sprite
	health   *Health
	power    int
	frame    int
	flapped  bool
	wingsUp  bool
	box      core.Box
	equipped *Projectile
}

// NewFlyer places a flyer at the spawn point, already flapping.
func NewFlyer(cfg config.FlyerConfig, sprite Sprite, health *Health) *Flyer {
	f := &Flyer{
		X:      cfg.SpawnX,
		Y:      cfg.SpawnY,
		cfg:    cfg,
		sprite: sprite,
		health: health,
	}
	f.Flap()
	f.RefreshBox()
	return f
}

func (f *Flyer) Health() *Health       { return f.health }
func (f *Flyer) Power() int            { return f.power }
func (f *Flyer) Equipped() *Projectile { return f.equipped }
func (f *Flyer) Box() core.Box         { return f.box }
func (f *Flyer) Boxes() []core.Box     { return []core.Box{f.box} }

// ApplyGravity accelerates the fall, capped at the maximum fall speed,
// and integrates the position.
func (f *Flyer) ApplyGravity() {
	f.VY = min(f.cfg.MaxFallSpeed, f.VY+f.cfg.Gravity)
	f.Y += f.VY
}

// Flap sets the upward velocity.
func (f *Flyer) Flap() {
	f.VY = f.cfg.FlapVelocity
	f.flapped = true
}

// Move implements Movable. The flyer ignores ambient velocity.
func (f *Flyer) Move(WorldParameters) {
	f.ApplyGravity()
	f.frame++
	f.wingsUp = f.flapped || (f.cfg.WingFlapEvery > 0 && f.frame%f.cfg.WingFlapEvery == 0)
	f.flapped = false
}

// RefreshBox recomputes the collision box from the current position.
func (f *Flyer) RefreshBox() {
	f.box = f.sprite.BoundsAt(f.X, f.Y)
}

// CheckOutOfBounds costs a life and returns the flyer to the spawn point
// when it leaves the vertical range [0, height]. Velocity is kept.
func (f *Flyer) CheckOutOfBounds(b Bounds) bool {
	if f.Y >= 0 && f.Y <= float64(b.Height()) {
		return false
	}
	f.health.LoseLife()
	f.X, f.Y = f.cfg.SpawnX, f.cfg.SpawnY
	f.RefreshBox()
	if f.equipped != nil {
		f.equipped.follow()
	}
	return true
}

// reach is the flyer plus its equipped projectile, if any.
type reach struct{ f *Flyer }

func (r reach) Boxes() []core.Box {
	if r.f.equipped == nil {
		return r.f.Boxes()
	}
	return []core.Box{r.f.box, r.f.equipped.Box()}
}

// CollideObstacles tests the nearest unpassed obstacle against the flyer
// and its equipped projectile. A hit removes the obstacle and costs a life.
// Returns whether all lives are exhausted.
func (f *Flyer) CollideObstacles(q *ObstacleQueue) bool {
	head := q.Head()
	if head == nil {
		return f.health.Exhausted()
	}
	if _, hit := firstHit(reach{f}, head); hit && q.Remove(head) {
		f.health.LoseLife()
	}
	return f.health.Exhausted()
}

// CollideProjectilePickup equips the first idle projectile touching the
// flyer. Does nothing while a projectile is already equipped.
func (f *Flyer) CollideProjectilePickup(projectiles []*Projectile) bool {
	if f.equipped != nil {
		return false
	}
	for _, p := range projectiles {
		if p.State() == ProjectileIdle && f.box.Intersects(p.Box()) {
			return f.Equip(p)
		}
	}
	return false
}

// Equip takes an idle projectile. A no-op while one is already equipped.
func (f *Flyer) Equip(p *Projectile) bool {
	if f.equipped != nil || !p.Equip(f) {
		return false
	}
	f.equipped = p
	return true
}

// Shoot launches the equipped projectile. A no-op when none is equipped.
func (f *Flyer) Shoot() bool {
	if f.equipped == nil {
		return false
	}
	f.equipped.Shoot()
	f.equipped = nil
	return true
}

// Disarm discards the equipped projectile.
func (f *Flyer) Disarm() {
	if f.equipped != nil {
		f.equipped.Destroy()
		f.equipped = nil
	}
}

// LevelUp raises the power level and enlarges health.
func (f *Flyer) LevelUp() {
	if f.power < maxPower {
		f.power++
	}
	f.health.LevelUp()
}

// Visual returns the sprite variant for power and wing position.
func (f *Flyer) Visual() Visual {
	switch {
	case f.power > 0 && f.wingsUp:
		return VisualFlyerPoweredWingsUp
	case f.power > 0:
		return VisualFlyerPoweredWingsDown
	case f.wingsUp:
		return VisualFlyerWingsUp
	default:
		return VisualFlyerWingsDown
	}
}
