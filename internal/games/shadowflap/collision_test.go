package shadowflap

import "testing"

var testWorld = World{W: 1024, H: 768}

func TestFlyerHitsSoftObstacle(t *testing.T) {
	f := testFlyer()
	q := &ObstacleQueue{}
	g := NewGateObstacle(200, 500, MaterialSoft, testParts())
	q.Push(g)

	r := ResolveCollisions(f, q, nil, testWorld)
	if r.LivesLost != 1 || f.Health().Lives() != 2 {
		t.Errorf("lives lost %d, lives %d; expected 1 and 2", r.LivesLost, f.Health().Lives())
	}
	if r.ObstaclesDestroyed != 1 || !g.Destroyed() {
		t.Error("obstacle should be destroyed by the collision")
	}
	if r.Exhausted {
		t.Error("two lives remain")
	}
	if q.Head() != nil || len(q.Pending()) != 0 {
		t.Error("obstacle should leave the pending collection")
	}

	r = ResolveCollisions(f, q, nil, testWorld)
	if r.LivesLost != 0 || f.Health().Lives() != 2 {
		t.Error("a removed obstacle must not cost a second life")
	}
}

func TestFlyerHitOnLastLife(t *testing.T) {
	f := testFlyer()
	f.Health().LoseLife()
	f.Health().LoseLife()

	q := &ObstacleQueue{}
	q.Push(NewGateObstacle(200, 500, MaterialSoft, testParts()))

	r := ResolveCollisions(f, q, nil, testWorld)
	if !r.Exhausted || f.Health().Lives() != 0 {
		t.Errorf("exhausted = %v, lives = %d; expected true and 0", r.Exhausted, f.Health().Lives())
	}
}

func TestFlyerChecksOnlyNearestObstacle(t *testing.T) {
	f := testFlyer()
	q := &ObstacleQueue{}
	q.Push(NewGateObstacle(700, 300, MaterialSoft, testParts()))
	q.Push(NewGateObstacle(200, 500, MaterialSoft, testParts()))

	if r := ResolveCollisions(f, q, nil, testWorld); r.LivesLost != 0 {
		t.Error("only the head of the pending queue is tested against the flyer")
	}
}

func TestFlyerHitsHazardOnlyWhileVisible(t *testing.T) {
	// the flyer sits in the gap, overlapping only the top flame
	f := testFlyer()
	q := &ObstacleQueue{}
	g := NewGateObstacle(200, 300, MaterialHard, testParts())
	q.Push(g)

	for range 30 {
		g.Hazard().Tick()
	}
	if r := ResolveCollisions(f, q, nil, testWorld); r.LivesLost != 0 {
		t.Fatal("hidden hazard must not collide")
	}

	for range 20 {
		g.Hazard().Tick()
	}
	r := ResolveCollisions(f, q, nil, testWorld)
	if r.LivesLost != 1 || !g.Destroyed() {
		t.Errorf("visible hazard should cost a life and remove the obstacle, lost %d", r.LivesLost)
	}
}

func TestShotProjectileAgainstObstacles(t *testing.T) {
	tests := []struct {
		name      string
		material  Material
		kind      ProjectileKind
		y         float64
		destroyed bool
	}{
		{"rock breaks soft", MaterialSoft, KindRock, 100, true},
		{"bomb breaks soft", MaterialSoft, KindBomb, 100, true},
		{"rock bounces off hard", MaterialHard, KindRock, 100, false},
		{"bomb breaks hard", MaterialHard, KindBomb, 100, true},
		{"bomb spent on a flame", MaterialHard, KindBomb, 330, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFlyer()
			q := &ObstacleQueue{}
			g := NewGateObstacle(600, 300, tt.material, testParts())
			q.Push(g)
			p := shotProjectile(t, tt.kind, 600, tt.y)

			r := ResolveCollisions(f, q, []*Projectile{p}, testWorld)
			if p.State() != ProjectileDestroyed {
				t.Errorf("projectile state = %v, expected destroyed", p.State())
			}
			if r.ProjectilesSpent != 1 {
				t.Errorf("projectiles spent = %d, expected 1", r.ProjectilesSpent)
			}
			if g.Destroyed() != tt.destroyed {
				t.Errorf("obstacle destroyed = %v, expected %v", g.Destroyed(), tt.destroyed)
			}
			wantKills := 0
			if tt.destroyed {
				wantKills = 1
			}
			if r.ShotKills != wantKills {
				t.Errorf("shot kills = %d, expected %d", r.ShotKills, wantKills)
			}
			if r.LivesLost != 0 {
				t.Error("projectile hits must not cost lives")
			}
		})
	}
}

func TestShotProjectilesRemovalDuringPass(t *testing.T) {
	f := testFlyer()
	parts := testParts()
	q := &ObstacleQueue{}
	first := NewGateObstacle(500, 300, MaterialSoft, parts)
	middle := NewGateObstacle(700, 300, MaterialSoft, parts)
	last := NewGateObstacle(900, 300, MaterialSoft, parts)
	q.Push(first)
	q.Push(middle)
	q.Push(last)

	a := shotProjectile(t, KindRock, 500, 100)
	b := shotProjectile(t, KindRock, 500, 100) // same target as a
	c := shotProjectile(t, KindRock, 900, 100)

	r := ResolveCollisions(f, q, []*Projectile{a, b, c}, testWorld)
	if r.ShotKills != 2 {
		t.Errorf("shot kills = %d, expected 2", r.ShotKills)
	}
	if !first.Destroyed() || middle.Destroyed() || !last.Destroyed() {
		t.Errorf("destroyed = %v/%v/%v, expected true/false/true", first.Destroyed(), middle.Destroyed(), last.Destroyed())
	}
	if b.State() != ProjectileShot {
		t.Errorf("second projectile should pass through the removed obstacle, state %v", b.State())
	}

	q.Compact()
	if pending := q.Pending(); len(pending) != 1 || pending[0] != middle {
		t.Errorf("pending after compaction = %d obstacles, expected only the middle one", len(pending))
	}
}

func TestProjectilePickup(t *testing.T) {
	s := testSprites()
	f := testFlyer()
	far := NewProjectile(800, 350, KindBomb, s.Bomb, 50, 5)
	near := NewProjectile(210, 350, KindRock, s.Rock, 25, 5)
	other := NewProjectile(215, 350, KindBomb, s.Bomb, 50, 5)
	projectiles := []*Projectile{far, near, other}

	r := ResolveCollisions(f, &ObstacleQueue{}, projectiles, testWorld)
	if !r.Picked || f.Equipped() != near {
		t.Fatal("the first touching projectile should be equipped")
	}
	if other.State() != ProjectileIdle || far.State() != ProjectileIdle {
		t.Error("only one projectile may be equipped")
	}

	r = ResolveCollisions(f, &ObstacleQueue{}, projectiles, testWorld)
	if r.Picked || f.Equipped() != near {
		t.Error("pickup is skipped while a projectile is equipped")
	}
}

func TestEquippedProjectileExtendsReach(t *testing.T) {
	s := testSprites()
	f := testFlyer()
	p := NewProjectile(210, 350, KindRock, s.Rock, 25, 5)
	f.Equip(p)

	// segment spans x [238, 302]: clear of the flyer, touching the projectile
	q := &ObstacleQueue{}
	q.Push(NewGateObstacle(270, 500, MaterialSoft, testParts()))

	r := ResolveCollisions(f, q, []*Projectile{p}, testWorld)
	if r.LivesLost != 1 {
		t.Errorf("lives lost = %d, expected 1", r.LivesLost)
	}
	if p.State() != ProjectileEquipped {
		t.Errorf("equipped projectile state = %v, should stay equipped", p.State())
	}
}

func TestOutOfBoundsCountsAsLifeLost(t *testing.T) {
	f := testFlyer()
	f.Y = -5

	r := ResolveCollisions(f, &ObstacleQueue{}, nil, testWorld)
	if r.LivesLost != 1 {
		t.Errorf("lives lost = %d, expected 1", r.LivesLost)
	}
}
