package pokeplaza

import (
	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
)

// resolveCollisions applies every overlap of the frame. It only marks
// entities inactive; compact removes them afterwards.
func (g *Game) resolveCollisions(events []core.Event) []core.Event {
	events = g.resolveShots(events)
	return g.resolveContacts(events)
}

// resolveShots pairs projectiles with the enemies that were active when the
// pass started. A projectile that reaches an enemy destroyed earlier in the
// same pass is still consumed, so several shots can land on one enemy while
// it is scored and exploded once.
func (g *Game) resolveShots(events []core.Event) []core.Event {
	g.alive = g.alive[:0]
	for i := range g.enemies {
		g.alive = append(g.alive, g.enemies[i].Active)
	}

	for pi := range g.projectiles {
		p := &g.projectiles[pi]
		if !p.Active {
			continue
		}
		pb := p.Bounds()
		for ei := range g.enemies {
			if !g.alive[ei] {
				continue
			}
			e := &g.enemies[ei]
			if e.Kind.Immune() || !pb.Intersects(e.Hitbox()) {
				continue
			}

			p.Active = false
			if e.Active {
				e.Health--
				if e.Health <= 0 {
					e.Active = false
					g.score += config.HitScore(g.tune.Combat.BaseHitScore, g.tier)
					cx, cy := e.Bounds().Center()
					g.explosions = append(g.explosions, NewExplosion(cx, cy, g.tune.Explosion, g.rng))
					events = append(events, core.Event{Kind: core.EventEnemyDestroyed, X: cx, Y: cy})
				}
			}
			break
		}
	}
	return events
}

// resolveContacts costs the player a life for each enemy touching it.
func (g *Game) resolveContacts(events []core.Event) []core.Event {
	hb := g.player.Hitbox()
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active || !hb.Intersects(e.Hitbox()) {
			continue
		}
		e.Active = false
		g.player.Lives--
		cx, cy := e.Bounds().Center()
		events = append(events, core.Event{Kind: core.EventPlayerHit, X: cx, Y: cy})

		if g.player.Lives <= 0 {
			g.player.Lives = 0
			g.gameOver = true
			if g.player.Shooting {
				g.player.Shooting = false
				events = append(events, core.Event{Kind: core.EventFireStopped})
			}
			events = append(events, core.Event{Kind: core.EventGameOver})
			break
		}
	}
	return events
}

// compact drops inactive entities, preserving order.
func (g *Game) compact() {
	g.enemies = keep(g.enemies, func(e *Enemy) bool { return e.Active })
	g.projectiles = keep(g.projectiles, func(p *Projectile) bool { return p.Active })
	g.explosions = keep(g.explosions, func(ex *Explosion) bool { return ex.Active() })
}

func keep[T any](s []T, ok func(*T) bool) []T {
	valid := s[:0]
	for i := range s {
		if ok(&s[i]) {
			valid = append(valid, s[i])
		}
	}
	clear(s[len(valid):])
	return valid
}
