package config

import (
	_ "embed"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the built-in gameplay constants. It mirrors
// defaults/tuning.yaml and is used when no YAML source can be parsed.
func DefaultTuning() Tuning {
	return Tuning{
		Field: FieldTuning{
			Width:       1000,
			Height:      600,
			GroundY:     550,
			MinX:        50,
			MaxX:        950,
			ScrollSpeed: 120,
		},
		Player: PlayerTuning{
			Width:           60,
			Height:          80,
			StartX:          100,
			Gravity:         1440,
			FastFallGravity: 5760,
			JumpVelocity:    -900,
			MoveSpeed:       480,
			Lives:           3,
			HitboxInsetX:    0.4,
			HitboxInsetY:    0.3,
			CrouchHeight:    0.55,
			ShotOffsetX:     0.4,
			ShotOffsetY:     0.5,
		},
		Enemies: EnemyTuning{
			SpeedJitter:    60,
			OffFieldMargin: 100,
			Walker: EnemyKindTuning{
				Width:       60,
				Height:      70,
				BaseSpeed:   180,
				HitboxInset: 0.2,
				Health:      1,
			},
			Flyer: EnemyKindTuning{
				Width:       70,
				Height:      50,
				BaseSpeed:   210,
				Lift:        50,
				Amplitude:   15,
				Omega:       3,
				HitboxInset: 0.3,
				Health:      1,
			},
			Heavy: EnemyKindTuning{
				Width:       140,
				Height:      80,
				BaseSpeed:   240,
				HitboxInset: 0.1,
				Health:      1,
			},
		},
		Projectile: ProjectileTuning{
			Speed:  900,
			Size:   12,
			Margin: 20,
		},
		Explosion: ExplosionTuning{
			Particles: 20,
			MinSpeed:  120,
			MaxSpeed:  240,
			Gravity:   720,
			Lifetime:  0.5,
		},
		Spawn: SpawnTuning{
			BaseInterval:   2.0,
			MinInterval:    1.2,
			IntervalStep:   0.05,
			ScoreStep:      10,
			HeavyGapFactor: 1.8,
			HeavyGapFloor:  3.5,
			RerollChance:   0.75,
		},
		Combat: CombatTuning{
			BaseHitScore: 10,
		},
	}
}

// DefaultYAML returns the embedded default tuning document.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
