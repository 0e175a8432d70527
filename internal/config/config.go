// Package config provides the difficulty model and the YAML tuning
// configuration of the game.
package config

// Tuning is the complete set of gameplay constants. Distances are in
// play-field units, speeds in units per second and times in seconds.
type Tuning struct {
	Field      FieldTuning      `yaml:"field"`
	Player     PlayerTuning     `yaml:"player"`
	Enemies    EnemyTuning      `yaml:"enemies"`
	Projectile ProjectileTuning `yaml:"projectile"`
	Explosion  ExplosionTuning  `yaml:"explosion"`
	Spawn      SpawnTuning      `yaml:"spawn"`
	Combat     CombatTuning     `yaml:"combat"`
}

// FieldTuning describes the logical play field.
type FieldTuning struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GroundY     float64 `yaml:"ground_y"`
	MinX        float64 `yaml:"min_x"` // Leftmost allowed player x
	MaxX        float64 `yaml:"max_x"` // Rightmost allowed player right edge
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// PlayerTuning defines player size and physics.
type PlayerTuning struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	StartX          float64 `yaml:"start_x"`
	Gravity         float64 `yaml:"gravity"`
	FastFallGravity float64 `yaml:"fast_fall_gravity"`
	JumpVelocity    float64 `yaml:"jump_velocity"` // Negative is up
	MoveSpeed       float64 `yaml:"move_speed"`
	Lives           int     `yaml:"lives"`
	HitboxInsetX    float64 `yaml:"hitbox_inset_x"`
	HitboxInsetY    float64 `yaml:"hitbox_inset_y"`
	CrouchHeight    float64 `yaml:"crouch_height"` // Fraction of Height kept while crouching
	ShotOffsetX     float64 `yaml:"shot_offset_x"` // Fraction of Width from the center
	ShotOffsetY     float64 `yaml:"shot_offset_y"` // Fraction of height above the feet
}

// EnemyKindTuning defines one enemy type.
type EnemyKindTuning struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BaseSpeed   float64 `yaml:"base_speed"`
	Lift        float64 `yaml:"lift"` // Height of the bottom edge above the ground
	Amplitude   float64 `yaml:"amplitude"`
	Omega       float64 `yaml:"omega"`
	HitboxInset float64 `yaml:"hitbox_inset"`
	Health      int     `yaml:"health"`
}

// EnemyTuning groups the enemy types and shared enemy parameters.
type EnemyTuning struct {
	Walker         EnemyKindTuning `yaml:"walker"`
	Flyer          EnemyKindTuning `yaml:"flyer"`
	Heavy          EnemyKindTuning `yaml:"heavy"`
	SpeedJitter    float64         `yaml:"speed_jitter"` // Max random bonus added to base speed
	OffFieldMargin float64         `yaml:"off_field_margin"`
}

// ProjectileTuning defines player shots.
type ProjectileTuning struct {
	Speed  float64 `yaml:"speed"`
	Size   float64 `yaml:"size"`
	Margin float64 `yaml:"margin"`
}

// ExplosionTuning defines the cosmetic particle bursts.
type ExplosionTuning struct {
	Particles int     `yaml:"particles"`
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Gravity   float64 `yaml:"gravity"`
	Lifetime  float64 `yaml:"lifetime"`
}

// SpawnTuning defines the spawn scheduler.
type SpawnTuning struct {
	BaseInterval   float64 `yaml:"base_interval"`
	MinInterval    float64 `yaml:"min_interval"`
	IntervalStep   float64 `yaml:"interval_step"` // Reduction per ScoreStep points
	ScoreStep      int     `yaml:"score_step"`
	HeavyGapFactor float64 `yaml:"heavy_gap_factor"`
	HeavyGapFloor  float64 `yaml:"heavy_gap_floor"`
	RerollChance   float64 `yaml:"reroll_chance"` // Chance to re-roll a repeated heavy
}

// CombatTuning defines scoring.
type CombatTuning struct {
	BaseHitScore int `yaml:"base_hit_score"`
}
