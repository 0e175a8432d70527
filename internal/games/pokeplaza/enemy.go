package pokeplaza

import (
	"math"

	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
)

// Kind is the closed set of enemy types.
type Kind int

const (
	Walker Kind = iota // Ground walker, destroyed by one shot
	Flyer              // Hovers at head height and bobs
	Heavy              // Fast truck, immune to shots
)

// Kinds lists every enemy type; the spawner picks from it uniformly.
var Kinds = [...]Kind{Walker, Flyer, Heavy}

// String returns the kind name used in sprites and logs.
func (k Kind) String() string {
	switch k {
	case Walker:
		return "walker"
	case Flyer:
		return "flyer"
	case Heavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Immune reports whether projectiles pass through this kind.
func (k Kind) Immune() bool {
	return k == Heavy
}

func kindTuning(t config.EnemyTuning, k Kind) config.EnemyKindTuning {
	switch k {
	case Flyer:
		return t.Flyer
	case Heavy:
		return t.Heavy
	default:
		return t.Walker
	}
}

// Enemy approaches the player from the right. X is the left edge and Y the
// bottom edge.
type Enemy struct {
	Kind   Kind
	X, Y   float64
	BaseY  float64 // Altitude the oscillation is centered on
	Speed  float64 // Base speed including the spawn jitter
	Age    float64
	Health int
	Active bool

	tune   config.EnemyKindTuning
	margin float64
}

// NewEnemy creates an enemy of the given kind just beyond the right edge.
func NewEnemy(k Kind, t config.Tuning, rng Rand) Enemy {
	kt := kindTuning(t.Enemies, k)
	speed := kt.BaseSpeed
	if t.Enemies.SpeedJitter > 0 {
		speed += rng.Float64() * t.Enemies.SpeedJitter
	}
	y := t.Field.GroundY - kt.Lift
	return Enemy{
		Kind:   k,
		X:      t.Field.Width,
		Y:      y,
		BaseY:  y,
		Speed:  speed,
		Health: max(kt.Health, 1),
		Active: true,
		tune:   kt,
		margin: t.Enemies.OffFieldMargin,
	}
}

// Update moves the enemy left at its speed scaled by speedMul. Flyers also
// bob around their base altitude.
func (e *Enemy) Update(dt, speedMul float64) {
	e.Age += dt
	e.X -= e.Speed * speedMul * dt
	if e.Kind == Flyer {
		e.Y = e.BaseY + e.tune.Amplitude*math.Sin(e.tune.Omega*e.Age)
	}
	if e.X+e.tune.Width < -e.margin {
		e.Active = false
	}
}

// Bounds returns the visual rectangle.
func (e Enemy) Bounds() core.Box {
	return core.NewBox(e.X, e.Y-e.tune.Height, e.tune.Width, e.tune.Height)
}

// Hitbox returns the collision rectangle.
func (e Enemy) Hitbox() core.Box {
	return e.Bounds().Inset(e.tune.HitboxInset, e.tune.HitboxInset)
}
