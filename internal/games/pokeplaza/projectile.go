package pokeplaza

import (
	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
)

// Projectile is a player shot. X and Y are its center.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Dir    float64
	Active bool

	size   float64
	margin float64
}

// NewProjectile creates an active shot travelling horizontally in dir.
func NewProjectile(x, y, dir float64, pt config.ProjectileTuning) Projectile {
	return Projectile{
		X:      x,
		Y:      y,
		VX:     dir * pt.Speed,
		Dir:    dir,
		Active: true,
		size:   pt.Size,
		margin: pt.Margin,
	}
}

// Update moves the shot and deactivates it once it leaves the field.
func (p *Projectile) Update(dt float64, field config.FieldTuning) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	if p.X > field.Width+p.margin || p.X < -p.margin || p.Y > field.Height || p.Y < -p.margin {
		p.Active = false
	}
}

// Bounds returns the collision rectangle.
func (p Projectile) Bounds() core.Box {
	return core.NewBox(p.X-p.size/2, p.Y-p.size/2, p.size, p.size)
}
