package shadowflap

import "github.com/vovakirdan/shadowflap/internal/core"

// ProjectileKind is the closed set of pickups.
type ProjectileKind int

const (
	KindRock ProjectileKind = iota // breaks soft obstacles only
	KindBomb                       // breaks soft and hard obstacles
)

// DestroysHard reports whether this kind can destroy a hard obstacle.
func (k ProjectileKind) DestroysHard() bool {
	return k == KindBomb
}

func (k ProjectileKind) String() string {
	if k == KindBomb {
		return "bomb"
	}
	return "rock"
}

// ProjectileState is the lifecycle stage of a projectile.
type ProjectileState int

const (
	ProjectileIdle ProjectileState = iota
	ProjectileEquipped
	ProjectileShot
	ProjectileDestroyed
)

func (s ProjectileState) String() string {
	switch s {
	case ProjectileIdle:
		return "idle"
	case ProjectileEquipped:
		return "equipped"
	case ProjectileShot:
		return "shot"
	default:
		return "destroyed"
	}
}

// Projectile drifts with the obstacles until the flyer picks it up, then
// rides along until shot. A shot projectile flies right for a limited time.
type Projectile struct {
	X, Y float64

	kind         ProjectileKind
	state        ProjectileState
	lifetime     int // frames left once shot
	shotVelocity float64
	sprite       Sprite
	owner        *Flyer
}

// NewProjectile creates an idle projectile.
func NewProjectile(x, y float64, kind ProjectileKind, sprite Sprite, lifetime int, shotVelocity float64) *Projectile {
	return &Projectile{
		X:            x,
		Y:            y,
		kind:         kind,
		state:        ProjectileIdle,
		lifetime:     lifetime,
		shotVelocity: shotVelocity,
		sprite:       sprite,
	}
}

func (p *Projectile) Kind() ProjectileKind   { return p.kind }
func (p *Projectile) State() ProjectileState { return p.state }
func (p *Projectile) Lifetime() int          { return p.lifetime }

// Equip attaches an idle projectile to the flyer. Any other state is a no-op.
func (p *Projectile) Equip(f *Flyer) bool {
	if p.state != ProjectileIdle || f == nil {
		return false
	}
	p.state = ProjectileEquipped
	p.owner = f
	p.follow()
	return true
}

// Shoot launches an equipped projectile. Any other state is a no-op.
func (p *Projectile) Shoot() bool {
	if p.state != ProjectileEquipped {
		return false
	}
	p.state = ProjectileShot
	p.owner = nil
	return true
}

// Destroy ends the projectile.
func (p *Projectile) Destroy() {
	p.state = ProjectileDestroyed
	p.owner = nil
}

// Move integrates one frame according to the current state.
func (p *Projectile) Move(w WorldParameters) {
	switch p.state {
	case ProjectileIdle:
		p.X -= w.AmbientVelocity
	case ProjectileEquipped:
		p.follow()
	case ProjectileShot:
		p.X += p.shotVelocity
		p.lifetime--
		if p.lifetime <= 0 {
			p.Destroy()
		}
	}
}

// follow snaps to the centre of the owner's right edge.
func (p *Projectile) follow() {
	if p.owner == nil {
		return
	}
	p.X = p.owner.X + p.owner.Box().W/2
	p.Y = p.owner.Y
}

// Box returns the projectile's collision box.
func (p *Projectile) Box() core.Box {
	return p.sprite.BoundsAt(p.X, p.Y)
}

// Boxes implements Collidable.
func (p *Projectile) Boxes() []core.Box {
	return []core.Box{p.Box()}
}

// Expired reports whether the projectile should be dropped from play.
// Idle projectiles expire once fully off the left edge, shot ones when their
// countdown ends or they leave on the right. Equipped ones never expire.
func (p *Projectile) Expired(b Bounds) bool {
	switch p.state {
	case ProjectileDestroyed:
		return true
	case ProjectileIdle:
		return p.Box().Right() <= 0
	case ProjectileShot:
		return p.Box().Left() >= float64(b.Width())
	default:
		return false
	}
}

// Visual returns what to draw for this projectile.
func (p *Projectile) Visual() Visual {
	if p.kind == KindBomb {
		return VisualBomb
	}
	return VisualRock
}
