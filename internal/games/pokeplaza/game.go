// Package pokeplaza implements the side-scrolling shooter simulation:
// the player, the enemy spawn scheduler, projectiles, explosions and the
// combat rules that connect them.
package pokeplaza

import (
	"math"

	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
)

// MaxStep caps a single simulation step so a stalled frame cannot tunnel
// entities through each other.
const MaxStep = 0.1

// Game is one play session. It owns every entity collection by value.
type Game struct {
	tune   config.Tuning
	tier   config.Tier
	params config.TierParams
	rng    Rand

	player      Player
	enemies     []Enemy
	projectiles []Projectile
	explosions  []Explosion
	spawner     *Spawner
	alive       []bool // Scratch snapshot for resolveShots

	score    int
	elapsed  float64
	speedMul float64
	scroll   float64
	gameOver bool
}

// New creates a session for the given tier. Randomness only comes from rng.
func New(tune config.Tuning, tier config.Tier, rng Rand) *Game {
	g := &Game{
		tune:    tune,
		tier:    tier,
		params:  tier.Params(),
		rng:     rng,
		spawner: NewSpawner(tune.Spawn, rng),
	}
	g.Reset()
	return g
}

// Reset restarts the session with the same tier, keeping the random source.
func (g *Game) Reset() {
	g.player = NewPlayer(g.tune)
	g.enemies = make([]Enemy, 0, 16)
	g.projectiles = make([]Projectile, 0, 32)
	g.explosions = make([]Explosion, 0, 8)
	g.spawner.Reset()
	g.score = 0
	g.elapsed = 0
	g.scroll = 0
	g.gameOver = false
	g.speedMul = config.EffectiveSpeed(g.tier, 0)
}

// Step advances the simulation by dt seconds.
// Order: player input and physics, entity motion, spawn decision,
// collision resolution, cleanup.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.gameOver || dt <= 0 {
		return core.StepResult{State: g.State()}
	}
	dt = math.Min(dt, MaxStep)

	var events []core.Event
	g.elapsed += dt
	g.speedMul = config.EffectiveSpeed(g.tier, g.score)

	g.player.Update(in, dt)
	events = g.updateFire(in, events)

	for i := range g.enemies {
		g.enemies[i].Update(dt, g.speedMul)
	}
	for i := range g.projectiles {
		g.projectiles[i].Update(dt, g.tune.Field)
	}
	for i := range g.explosions {
		g.explosions[i].Update(dt)
	}
	g.scroll = math.Mod(g.scroll+g.tune.Field.ScrollSpeed*g.speedMul*dt, g.tune.Field.Width)

	if kind, ok := g.spawner.Update(dt, g.score, g.speedMul); ok {
		g.enemies = append(g.enemies, NewEnemy(kind, g.tune, g.rng))
	}

	events = g.resolveCollisions(events)
	g.compact()

	return core.StepResult{State: g.State(), Events: events}
}

// updateFire tracks the held fire input and spawns shots off cooldown.
func (g *Game) updateFire(in core.InputFrame, events []core.Event) []core.Event {
	was := g.player.Shooting
	g.player.Shooting = in.Holding(core.ActionFire)
	switch {
	case g.player.Shooting && !was:
		events = append(events, core.Event{Kind: core.EventFireStarted})
	case !g.player.Shooting && was:
		events = append(events, core.Event{Kind: core.EventFireStopped})
	}

	if g.player.Shooting {
		if p, ok := g.player.Fire(g.params.ShotCooldown, g.tune.Projectile); ok {
			g.projectiles = append(g.projectiles, p)
			events = append(events, core.Event{Kind: core.EventShotFired, X: p.X, Y: p.Y})
		}
	}
	return events
}

// StopFire releases the fire input, for when the session leaves play.
// It reports whether the player was shooting.
func (g *Game) StopFire() bool {
	was := g.player.Shooting
	g.player.Shooting = false
	return was
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.player.Lives,
		GameOver: g.gameOver,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.player }

// Enemies returns the live enemy collection. Callers must not modify it.
func (g *Game) Enemies() []Enemy { return g.enemies }

// Projectiles returns the live projectile collection. Callers must not modify it.
func (g *Game) Projectiles() []Projectile { return g.projectiles }

// Explosions returns the live explosion collection. Callers must not modify it.
func (g *Game) Explosions() []Explosion { return g.explosions }

// Tier returns the difficulty tier of the session.
func (g *Game) Tier() config.Tier { return g.tier }

// SpeedMultiplier returns the effective speed multiplier of the last step.
func (g *Game) SpeedMultiplier() float64 { return g.speedMul }

// Elapsed returns the simulated seconds since the last reset.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Tuning returns the constants the session runs with.
func (g *Game) Tuning() config.Tuning { return g.tune }
