package shadowflap

// CollisionReport summarises one frame of collision resolution.
type CollisionReport struct {
	LivesLost          int
	ObstaclesDestroyed int
	ShotKills          int // obstacles destroyed by shot projectiles
	ProjectilesSpent   int
	Picked             bool // a projectile was equipped this frame
	Exhausted          bool // the flyer has no lives left
}

// ResolveCollisions runs the per-frame collision protocol in order:
// flyer bounds, flyer against the nearest pending obstacle, pickup, then
// every shot projectile against pending obstacles. Removed entities are
// only flagged, so iteration never skips or revisits an element; callers
// compact the collections afterwards.
//
// An equipped projectile never hits obstacles on its own. It only extends
// the flyer's reach in the obstacle check.
func ResolveCollisions(f *Flyer, obstacles *ObstacleQueue, projectiles []*Projectile, world Bounds) CollisionReport {
	var r CollisionReport
	before := f.Health().Lives()

	f.CheckOutOfBounds(world)

	head := obstacles.Head()
	r.Exhausted = f.CollideObstacles(obstacles)
	if head != nil && head.Destroyed() {
		r.ObstaclesDestroyed++
	}

	if f.Equipped() == nil {
		r.Picked = f.CollideProjectilePickup(projectiles)
	}

	for _, p := range projectiles {
		if p.State() != ProjectileShot {
			continue
		}
		hit, destroyed := resolveShot(p, obstacles)
		if hit {
			r.ProjectilesSpent++
		}
		if destroyed {
			r.ObstaclesDestroyed++
			r.ShotKills++
		}
	}

	r.LivesLost = before - f.Health().Lives()
	return r
}

// resolveShot tests one shot projectile against the pending obstacles and
// stops at the first touching box. The projectile is always spent on a
// hit; the obstacle only falls when a pipe segment was hit by a kind that
// can break its material.
func resolveShot(p *Projectile, obstacles *ObstacleQueue) (hit, destroyed bool) {
	for _, g := range obstacles.Pending() {
		idx, ok := firstHit(p, g)
		if !ok {
			continue
		}
		p.Destroy()
		if idx < g.SegmentCount() && g.CollideProjectile(p.Kind()) {
			return true, obstacles.Remove(g)
		}
		return true, false
	}
	return false, false
}
