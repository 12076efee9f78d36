package config

import (
	_ "embed"
)

//go:embed defaults/shadowflap.yaml
var defaultShadowFlapYAML []byte

// DefaultShadowFlapConfig returns the built-in ShadowFlap configuration.
// It matches defaults/shadowflap.yaml and is used when the embedded file
// cannot be parsed.
func DefaultShadowFlapConfig() ShadowFlapConfig {
	return ShadowFlapConfig{
		World: WorldConfig{
			Width:  1024,
			Height: 768,
		},
		Flyer: FlyerConfig{
			SpawnX:        200,
			SpawnY:        350,
			Gravity:       0.4,
			MaxFallSpeed:  10,
			FlapVelocity:  -6,
			WingFlapEvery: 10,
		},
		Obstacles: ObstacleConfig{
			BaseVelocity: 3,
			SpawnPeriod:  120,
			GapHeight:    168,
			GapSlots:     []int{100, 300, 500},
			GapMin:       100,
			GapMax:       500,
		},
		Hazards: HazardConfig{
			StayFrames: 30,
			GapFrames:  20,
		},
		Projectiles: ProjectileConfig{
			ShotVelocity: 5,
			SpawnMinY:    100,
			SpawnMaxY:    500,
			RockLifetime: 25,
			BombLifetime: 50,
		},
		Health: HealthConfig{
			BaseLives: 3,
		},
		Timescale: TimescaleConfig{
			Min:  1,
			Max:  5,
			Base: 1.5,
		},
		Sprites: SpriteConfig{
			Flyer:  Size{W: 64, H: 48},
			Pipe:   Size{W: 64, H: 768},
			Hazard: Size{W: 40, H: 40},
			Rock:   Size{W: 32, H: 32},
			Bomb:   Size{W: 36, H: 36},
		},
		LevelUpFrames: 120,
		Levels: []LevelConfig{
			{
				Name:         "Level 1",
				TargetScore:  5,
				Materials:    []string{MaterialSoft},
				GapPlacement: GapPlacementSlots,
			},
			{
				Name:           "Level 2",
				TargetScore:    10,
				Materials:      []string{MaterialSoft, MaterialHard},
				GapPlacement:   GapPlacementRange,
				Projectiles:    true,
				ShotKillScores: true,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shadowflap":
		return defaultShadowFlapYAML
	default:
		return nil
	}
}
