package shadowflap

import "github.com/samber/lo"

// Snapshot is a flat copy of the session state for determinism checks.
// Positions are stored in hundredths of a world unit.
type Snapshot struct {
	Tick       uint64
	LevelIndex int
	Phase      int
	Timescale  int
	LevelScore int
	TotalScore int
	Lives      int
	Capacity   int
	Power      int
	FlyerY     int
	FlyerVY    int
	Equipped   int // kind+1 of the equipped projectile, 0 when empty

	// Obstacles, 4 ints each: X, GapTop, Material, Passed
	ObstacleData []int

	// Projectiles, 4 ints each: X, Y, Kind, State
	ProjectileData []int
}

func fixed(v float64) int {
	return int(v * 100)
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	q := g.level.Obstacles()
	obstacles := append(
		lo.FlatMap(q.Pending(), func(o *GateObstacle, _ int) []int {
			return []int{fixed(o.X), fixed(o.GapTop()), int(o.Material()), 0}
		}),
		lo.FlatMap(q.Passed(), func(o *GateObstacle, _ int) []int {
			return []int{fixed(o.X), fixed(o.GapTop()), int(o.Material()), 1}
		})...,
	)
	projectiles := lo.FlatMap(g.level.Projectiles(), func(p *Projectile, _ int) []int {
		return []int{fixed(p.X), fixed(p.Y), int(p.Kind()), int(p.State())}
	})

	equipped := 0
	if p := g.flyer.Equipped(); p != nil {
		equipped = int(p.Kind()) + 1
	}

	return Snapshot{
		Tick:           uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		LevelIndex:     g.levelIndex,
		Phase:          int(g.level.Phase()),
		Timescale:      g.level.Timescale().Level(),
		LevelScore:     g.score.Level(),
		TotalScore:     g.score.Total(),
		Lives:          g.health.Lives(),
		Capacity:       g.health.Capacity(),
		Power:          g.flyer.Power(),
		FlyerY:         fixed(g.flyer.Y),
		FlyerVY:        fixed(g.flyer.VY),
		Equipped:       equipped,
		ObstacleData:   obstacles,
		ProjectileData: projectiles,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.LevelIndex, snap.Phase, snap.Timescale, snap.LevelScore, snap.TotalScore,
		snap.Lives, snap.Capacity, snap.Power, snap.FlyerY, snap.FlyerVY, snap.Equipped,
		len(snap.ObstacleData), len(snap.ProjectileData),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ObstacleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
