package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ValidationError describes a rejected configuration value.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// LoadShadowFlap loads ShadowFlap configuration.
// Search order: customPath -> ~/.arcade/configs/shadowflap.yaml -> ./configs/shadowflap.yaml -> embedded default
func LoadShadowFlap(customPath string) (ShadowFlapConfig, error) {
	var cfg ShadowFlapConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath("shadowflap.yaml"), filepath.Join("configs", "shadowflap.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fileCfg ShadowFlapConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShadowFlapYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultShadowFlapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c ShadowFlapConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable game.
// All problems are reported, joined into one error.
func (c ShadowFlapConfig) Validate() error {
	var errs []error
	fail := func(code, format string, args ...any) {
		errs = append(errs, ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		fail("WORLD_SIZE", "world must have a positive size, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.Flyer.MaxFallSpeed <= 0 {
		fail("FLYER_FALL", "max_fall_speed must be positive")
	}
	if c.Flyer.FlapVelocity >= 0 {
		fail("FLYER_FLAP", "flap_velocity must be negative (upward), got %v", c.Flyer.FlapVelocity)
	}
	if c.Obstacles.SpawnPeriod <= 0 {
		fail("OBSTACLE_PERIOD", "spawn_period must be positive")
	}
	if c.Obstacles.BaseVelocity <= 0 {
		fail("OBSTACLE_VELOCITY", "base_velocity must be positive")
	}
	if c.Obstacles.GapHeight <= 0 {
		fail("OBSTACLE_GAP", "gap_height must be positive")
	}
	if c.Hazards.StayFrames <= 0 || c.Hazards.GapFrames < 0 {
		fail("HAZARD_CYCLE", "hazard cycle needs stay_frames > 0 and gap_frames >= 0")
	}
	if c.Projectiles.SpawnMaxY <= c.Projectiles.SpawnMinY {
		fail("PROJECTILE_SPAWN", "spawn_max_y must exceed spawn_min_y")
	}
	if c.Projectiles.RockLifetime <= 0 || c.Projectiles.BombLifetime <= 0 {
		fail("PROJECTILE_LIFETIME", "projectile lifetimes must be positive")
	}
	if c.Health.BaseLives <= 0 {
		fail("HEALTH_LIVES", "base_lives must be positive")
	}
	if c.Timescale.Min < 1 || c.Timescale.Max < c.Timescale.Min {
		fail("TIMESCALE_RANGE", "timescale range [%d, %d] is invalid", c.Timescale.Min, c.Timescale.Max)
	}
	if c.Timescale.Base < 1 {
		fail("TIMESCALE_BASE", "timescale base must be at least 1, got %v", c.Timescale.Base)
	}
	if c.LevelUpFrames < 0 {
		fail("LEVEL_UP_FRAMES", "level_up_frames must not be negative")
	}
	if len(c.Levels) == 0 {
		fail("LEVELS_EMPTY", "at least one level is required")
	}
	for i, lvl := range c.Levels {
		c.validateLevel(i, lvl, fail)
	}

	return errors.Join(errs...)
}

func (c ShadowFlapConfig) validateLevel(i int, lvl LevelConfig, fail func(code, format string, args ...any)) {
	if lvl.TargetScore <= 0 {
		fail("LEVEL_TARGET", "level %d: target_score must be positive", i)
	}
	if len(lvl.Materials) == 0 {
		fail("LEVEL_MATERIALS", "level %d: at least one material is required", i)
	}
	for _, m := range lvl.Materials {
		if m != MaterialSoft && m != MaterialHard {
			fail("LEVEL_MATERIALS", "level %d: unknown material %q", i, m)
		}
	}
	switch lvl.GapPlacement {
	case GapPlacementSlots:
		if len(c.Obstacles.GapSlots) == 0 {
			fail("LEVEL_GAP", "level %d: slots placement needs obstacles.gap_slots", i)
		}
	case GapPlacementRange:
		if c.Obstacles.GapMax <= c.Obstacles.GapMin {
			fail("LEVEL_GAP", "level %d: range placement needs gap_max > gap_min", i)
		}
	default:
		fail("LEVEL_GAP", "level %d: unknown gap_placement %q", i, lvl.GapPlacement)
	}
}
