package shadowflap

import (
	"math/rand"

	"github.com/vovakirdan/shadowflap/internal/config"
)

// SpawnBatch is what the spawner emits on one frame. Either field may be nil.
type SpawnBatch struct {
	Obstacle   *GateObstacle
	Projectile *Projectile
}

// Spawner emits obstacles and projectiles on a frame count that starts at
// the first playing frame of a level.
type Spawner struct {
	frame   int
	params  WorldParameters
	rng     *rand.Rand
	rules   Ruleset
	world   World
	parts   GateParts
	cfg     config.ObstacleConfig
	shots   config.ProjectileConfig
	sprites Sprites
}

// NewSpawner creates a spawner for one level.
func NewSpawner(rules Ruleset, cfg *config.ShadowFlapConfig, params WorldParameters, rng *rand.Rand) *Spawner {
	sprites := SpritesFromConfig(cfg.Sprites)
	return &Spawner{
		params: params,
		rng:    rng,
		rules:  rules,
		world:  World{W: cfg.World.Width, H: cfg.World.Height},
		parts: GateParts{
			GapHeight: cfg.Obstacles.GapHeight,
			Pipe:      sprites.Pipe,
			Hazard:    sprites.Hazard,
			Cycle:     cfg.Hazards,
		},
		cfg:     cfg.Obstacles,
		shots:   cfg.Projectiles,
		sprites: sprites,
	}
}

// Retime implements Retimer.
func (s *Spawner) Retime(p WorldParameters) {
	s.params = p
}

// Frame returns the number of frames ticked so far.
func (s *Spawner) Frame() int {
	return s.frame
}

// Tick runs one frame of the schedule.
func (s *Spawner) Tick() SpawnBatch {
	var batch SpawnBatch

	if s.frame%s.params.ObstaclePeriod == 0 {
		batch.Obstacle = s.spawnObstacle()
	}

	period := s.params.ProjectilePeriod
	if s.rules.Projectiles && s.frame%period == period/2 && s.rng.Intn(2) == 0 {
		batch.Projectile = s.spawnProjectile()
	}

	s.frame++
	return batch
}

func (s *Spawner) spawnObstacle() *GateObstacle {
	material := MaterialSoft
	if n := len(s.rules.Materials); n > 0 {
		material = s.rules.Materials[s.rng.Intn(n)]
	}
	return NewGateObstacle(float64(s.world.W), s.gapTop(), material, s.parts)
}

// gapTop picks the top edge of the gap according to the level's placement.
func (s *Spawner) gapTop() float64 {
	if s.rules.GapPlacement == config.GapPlacementRange {
		return float64(s.cfg.GapMin + s.rng.Intn(s.cfg.GapMax-s.cfg.GapMin))
	}
	return float64(s.cfg.GapSlots[s.rng.Intn(len(s.cfg.GapSlots))])
}

func (s *Spawner) spawnProjectile() *Projectile {
	kind := KindBomb
	if s.rng.Intn(2) == 0 {
		kind = KindRock
	}
	y := float64(s.shots.SpawnMinY + s.rng.Intn(s.shots.SpawnMaxY-s.shots.SpawnMinY))

	if kind == KindRock {
		return NewProjectile(float64(s.world.W), y, kind, s.sprites.Rock, s.shots.RockLifetime, s.shots.ShotVelocity)
	}
	return NewProjectile(float64(s.world.W), y, kind, s.sprites.Bomb, s.shots.BombLifetime, s.shots.ShotVelocity)
}
