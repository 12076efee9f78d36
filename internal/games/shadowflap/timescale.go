package shadowflap

import (
	"math"

	"github.com/vovakirdan/shadowflap/internal/config"
)

// Timescale is the player-controlled speed multiplier.
// The level is clamped to [min, max]; out-of-range requests are ignored.
type Timescale struct {
	level int
	min   int
	max   int
	base  float64
}

// NewTimescale returns a timescale at its minimum level.
func NewTimescale(cfg config.TimescaleConfig) *Timescale {
	return &Timescale{
		level: cfg.Min,
		min:   cfg.Min,
		max:   cfg.Max,
		base:  cfg.Base,
	}
}

// Increase raises the level by one. Reports whether the level changed.
func (t *Timescale) Increase() bool {
	if t.level >= t.max {
		return false
	}
	t.level++
	return true
}

// Decrease lowers the level by one. Reports whether the level changed.
func (t *Timescale) Decrease() bool {
	if t.level <= t.min {
		return false
	}
	t.level--
	return true
}

// Level returns the current discrete level.
func (t *Timescale) Level() int {
	return t.level
}

// Effect returns base^(level-1).
func (t *Timescale) Effect() float64 {
	return math.Pow(t.base, float64(t.level-1))
}

// WorldParameters are the values derived from the timescale that every
// moving entity and the spawner depend on. They are passed by value into
// each Move call so no entity keeps a stale copy.
type WorldParameters struct {
	AmbientVelocity  float64 // leftward speed of obstacles, hazards and idle projectiles
	ObstaclePeriod   int     // frames between obstacle spawns
	ProjectilePeriod int     // frames between projectile spawn opportunities
}

// DeriveParameters computes the world parameters for a timescale effect.
func DeriveParameters(effect float64, obstacles config.ObstacleConfig) WorldParameters {
	period := int(math.Floor(float64(obstacles.SpawnPeriod) / effect))
	if period < 1 {
		period = 1
	}
	return WorldParameters{
		AmbientVelocity:  obstacles.BaseVelocity * effect,
		ObstaclePeriod:   period,
		ProjectilePeriod: period,
	}
}

// Retimer is implemented by components that cache WorldParameters.
// Retime is called synchronously whenever the timescale changes.
type Retimer interface {
	Retime(p WorldParameters)
}
