// Package config provides YAML-based game configuration loading and
// validation for the arcade.
package config

// ShadowFlapConfig contains all tunable constants of the ShadowFlap simulation.
type ShadowFlapConfig struct {
	World       WorldConfig      `yaml:"world"`
	Flyer       FlyerConfig      `yaml:"flyer"`
	Obstacles   ObstacleConfig   `yaml:"obstacles"`
	Hazards     HazardConfig     `yaml:"hazards"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Health      HealthConfig     `yaml:"health"`
	Timescale   TimescaleConfig  `yaml:"timescale"`
	Sprites     SpriteConfig     `yaml:"sprites"`
	Levels      []LevelConfig    `yaml:"levels"`

	// LevelUpFrames is how long the level-up screen is held before the next level starts.
	LevelUpFrames int `yaml:"level_up_frames"`
}

// WorldConfig is the logical playfield size in world units.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlyerConfig defines the player-controlled entity.
type FlyerConfig struct {
	SpawnX        float64 `yaml:"spawn_x"`
	SpawnY        float64 `yaml:"spawn_y"`
	Gravity       float64 `yaml:"gravity"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	FlapVelocity  float64 `yaml:"flap_velocity"` // negative = up
	WingFlapEvery int     `yaml:"wing_flap_every"`
}

// ObstacleConfig defines gate obstacle spawning and movement.
type ObstacleConfig struct {
	BaseVelocity float64 `yaml:"base_velocity"`
	SpawnPeriod  int     `yaml:"spawn_period"`
	GapHeight    float64 `yaml:"gap_height"`
	GapSlots     []int   `yaml:"gap_slots"` // gap tops used by "slots" placement
	GapMin       int     `yaml:"gap_min"`   // [min, max) used by "range" placement
	GapMax       int     `yaml:"gap_max"`
}

// HazardConfig defines the visibility cycle of hazards.
type HazardConfig struct {
	StayFrames int `yaml:"stay_frames"`
	GapFrames  int `yaml:"gap_frames"`
}

// ProjectileConfig defines pickups that can be shot.
type ProjectileConfig struct {
	ShotVelocity float64 `yaml:"shot_velocity"`
	SpawnMinY    int     `yaml:"spawn_min_y"`
	SpawnMaxY    int     `yaml:"spawn_max_y"`
	RockLifetime int     `yaml:"rock_lifetime"`
	BombLifetime int     `yaml:"bomb_lifetime"`
}

// HealthConfig defines the life counter.
type HealthConfig struct {
	BaseLives int `yaml:"base_lives"` // capacity is base_lives * (level+1)
}

// TimescaleConfig defines the speed-scaling control.
type TimescaleConfig struct {
	Min  int     `yaml:"min"`
	Max  int     `yaml:"max"`
	Base float64 `yaml:"base"`
}

// Size is a sprite bounding box size in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// SpriteConfig holds the bounding-box sizes of every visual.
type SpriteConfig struct {
	Flyer  Size `yaml:"flyer"`
	Pipe   Size `yaml:"pipe"`
	Hazard Size `yaml:"hazard"`
	Rock   Size `yaml:"rock"`
	Bomb   Size `yaml:"bomb"`
}

// Gap placement modes.
const (
	GapPlacementSlots = "slots"
	GapPlacementRange = "range"
)

// Material names accepted in LevelConfig.Materials.
const (
	MaterialSoft = "soft"
	MaterialHard = "hard"
)

// LevelConfig is the rule set of one level.
type LevelConfig struct {
	Name           string   `yaml:"name"`
	TargetScore    int      `yaml:"target_score"`
	Materials      []string `yaml:"materials"`
	GapPlacement   string   `yaml:"gap_placement"`
	Projectiles    bool     `yaml:"projectiles"`
	ShotKillScores bool     `yaml:"shot_kill_scores"`
}
