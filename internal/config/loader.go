package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TuningFile is the file name searched for in the config directories.
const TuningFile = "tuning.yaml"

// Load loads the gameplay tuning.
// Search order: customPath -> ~/.pokeplaza/tuning.yaml -> ./configs/tuning.yaml -> embedded default.
// Every YAML source is layered over DefaultTuning, so a file only needs the
// keys it changes. Only an explicit customPath can produce an error.
func Load(customPath string) (Tuning, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTuning(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultTuning(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(TuningFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", TuningFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultTuningYAML)
	if err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML tuning document over the defaults and validates it.
func Parse(data []byte) (Tuning, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTuning(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultTuning(), err
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(t.Field.Width > 0 && t.Field.Height > 0, "field: width and height must be positive")
	check(t.Field.GroundY > 0 && t.Field.GroundY <= t.Field.Height, "field: ground_y must lie inside the field")
	check(t.Field.MinX < t.Field.MaxX, "field: min_x must be below max_x")
	check(t.Player.Width > 0 && t.Player.Height > 0, "player: width and height must be positive")
	check(t.Player.Width <= t.Field.MaxX-t.Field.MinX, "player: wider than the movement range")
	check(t.Player.JumpVelocity < 0, "player: jump_velocity must be negative (up)")
	check(t.Player.Gravity > 0 && t.Player.FastFallGravity >= t.Player.Gravity, "player: fast_fall_gravity must be at least gravity")
	check(t.Player.Lives > 0, "player: lives must be positive")
	check(t.Player.CrouchHeight > 0 && t.Player.CrouchHeight <= 1, "player: crouch_height must be in (0,1]")
	for name, k := range map[string]EnemyKindTuning{"walker": t.Enemies.Walker, "flyer": t.Enemies.Flyer, "heavy": t.Enemies.Heavy} {
		check(k.Width > 0 && k.Height > 0, "enemies."+name+": width and height must be positive")
		check(k.BaseSpeed > 0, "enemies."+name+": base_speed must be positive")
		check(k.Health > 0, "enemies."+name+": health must be positive")
	}
	check(t.Projectile.Speed > 0 && t.Projectile.Size > 0, "projectile: speed and size must be positive")
	check(t.Explosion.Lifetime > 0, "explosion: lifetime must be positive")
	check(t.Spawn.BaseInterval > 0 && t.Spawn.MinInterval > 0, "spawn: intervals must be positive")
	check(t.Spawn.MinInterval <= t.Spawn.BaseInterval, "spawn: min_interval must not exceed base_interval")
	check(t.Spawn.RerollChance >= 0 && t.Spawn.RerollChance <= 1, "spawn: reroll_chance must be in [0,1]")
	check(t.Combat.BaseHitScore >= 0, "combat: base_hit_score must not be negative")

	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pokeplaza", filename)
}
