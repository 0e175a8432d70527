package pokeplaza

import (
	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
)

// Player is the controlled character. X is the left edge and Y the feet.
type Player struct {
	X, Y      float64
	VY        float64
	Facing    float64 // +1 right, -1 left
	Airborne  bool
	Crouching bool
	Lives     int
	SinceShot float64 // Seconds since the last shot
	Shooting  bool    // Fire input is held; drives the fire loop sound

	tune  config.PlayerTuning
	field config.FieldTuning
}

// NewPlayer places a fresh player on the ground.
func NewPlayer(t config.Tuning) Player {
	return Player{
		X:         core.ClampF(t.Player.StartX, t.Field.MinX, t.Field.MaxX-t.Player.Width),
		Y:         t.Field.GroundY,
		Facing:    1,
		Lives:     t.Player.Lives,
		SinceShot: 1e9, // first shot is never blocked
		tune:      t.Player,
		field:     t.Field,
	}
}

// Update applies movement input and gravity for one frame.
func (p *Player) Update(in core.InputFrame, dt float64) {
	dir := 0.0
	if in.Holding(core.ActionLeft) {
		dir--
	}
	if in.Holding(core.ActionRight) {
		dir++
	}
	if dir != 0 {
		p.Facing = dir
		p.X += dir * p.tune.MoveSpeed * dt
	}
	p.X = core.ClampF(p.X, p.field.MinX, p.field.MaxX-p.tune.Width)

	duck := in.Holding(core.ActionDuck)
	p.Crouching = duck && !p.Airborne

	if in.Has(core.ActionJump) && !p.Airborne && !p.Crouching {
		p.VY = p.tune.JumpVelocity
		p.Airborne = true
	}

	if p.Airborne {
		g := p.tune.Gravity
		if duck {
			g = p.tune.FastFallGravity
		}
		p.VY += g * dt
		p.Y += p.VY * dt
		if p.Y >= p.field.GroundY {
			p.Y = p.field.GroundY
			p.VY = 0
			p.Airborne = false
		}
	}

	p.SinceShot += dt
}

// Fire spawns a projectile in the facing direction if the cooldown has
// elapsed, and restarts the cooldown.
func (p *Player) Fire(cooldown float64, pt config.ProjectileTuning) (Projectile, bool) {
	if p.SinceShot < cooldown {
		return Projectile{}, false
	}
	p.SinceShot = 0

	b := p.Bounds()
	cx, _ := b.Center()
	x := cx + p.Facing*p.tune.ShotOffsetX*b.W
	y := p.Y - p.tune.ShotOffsetY*b.H
	return NewProjectile(x, y, p.Facing, pt), true
}

// Bounds returns the visual rectangle, which is shorter while crouching.
func (p Player) Bounds() core.Box {
	h := p.tune.Height
	if p.Crouching {
		h *= p.tune.CrouchHeight
	}
	return core.NewBox(p.X, p.Y-h, p.tune.Width, h)
}

// Hitbox returns the collision rectangle.
func (p Player) Hitbox() core.Box {
	return p.Bounds().Inset(p.tune.HitboxInsetX, p.tune.HitboxInsetY)
}
