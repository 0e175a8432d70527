package pokeplaza

import (
	"math"

	"github.com/vovakirdan/pokeplaza/internal/config"
)

// Particle is one fragment of an explosion.
type Particle struct {
	X, Y   float64
	VX, VY float64
}

// Explosion is a cosmetic particle burst. It takes no part in collisions.
type Explosion struct {
	X, Y      float64
	Particles []Particle
	Age       float64
	Lifetime  float64

	gravity float64
}

// NewExplosion bursts particles from (x, y) in random directions.
func NewExplosion(x, y float64, et config.ExplosionTuning, rng Rand) Explosion {
	ex := Explosion{
		X:         x,
		Y:         y,
		Particles: make([]Particle, et.Particles),
		Lifetime:  et.Lifetime,
		gravity:   et.Gravity,
	}
	for i := range ex.Particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := et.MinSpeed + rng.Float64()*(et.MaxSpeed-et.MinSpeed)
		ex.Particles[i] = Particle{
			X:  x,
			Y:  y,
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
		}
	}
	return ex
}

// Update integrates every particle and advances the shared clock.
func (ex *Explosion) Update(dt float64) {
	ex.Age += dt
	for i := range ex.Particles {
		p := &ex.Particles[i]
		p.VY += ex.gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
	}
}

// Active reports whether the explosion is still visible.
func (ex Explosion) Active() bool {
	return ex.Age < ex.Lifetime
}

// Progress returns how far through its lifetime the explosion is, in [0,1].
func (ex Explosion) Progress() float64 {
	if ex.Lifetime <= 0 {
		return 1
	}
	return math.Min(1, ex.Age/ex.Lifetime)
}
