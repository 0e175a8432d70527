package pokeplaza

import (
	"testing"

	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
)

// shotAt returns an active projectile centered on the enemy's hitbox.
func shotAt(g *Game, e Enemy) Projectile {
	cx, cy := e.Hitbox().Center()
	return NewProjectile(cx, cy, 1, g.tune.Projectile)
}

// farEnemy places an enemy away from the player.
func farEnemy(g *Game, k Kind) Enemy {
	e := NewEnemy(k, g.tune, &scriptedRand{})
	e.X = 600
	return e
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestImmuneHeavyIgnoresProjectiles(t *testing.T) {
	g := newTestGame(config.Normal)
	heavy := farEnemy(g, Heavy)
	g.enemies = append(g.enemies, heavy)
	g.projectiles = append(g.projectiles, shotAt(g, heavy), shotAt(g, heavy))

	events := g.resolveCollisions(nil)
	g.compact()

	if len(g.enemies) != 1 || !g.enemies[0].Active || g.enemies[0].Health != heavy.Health {
		t.Errorf("heavy should be untouched, got %+v", g.enemies)
	}
	if len(g.projectiles) != 2 {
		t.Errorf("projectiles should pass through a heavy, %d left", len(g.projectiles))
	}
	if g.score != 0 || len(events) != 0 || len(g.explosions) != 0 {
		t.Errorf("no score, events or explosions expected: score=%d events=%v", g.score, events)
	}
}

func TestProjectilePassesHeavyAndHitsWalkerBehind(t *testing.T) {
	g := newTestGame(config.Normal)
	heavy := farEnemy(g, Heavy)
	walker := farEnemy(g, Walker)
	walker.X = heavy.X + 20
	g.enemies = append(g.enemies, heavy, walker)
	g.projectiles = append(g.projectiles, shotAt(g, walker))

	g.resolveCollisions(nil)
	g.compact()

	if len(g.enemies) != 1 || g.enemies[0].Kind != Heavy {
		t.Errorf("only the heavy should survive, got %+v", g.enemies)
	}
	if len(g.projectiles) != 0 {
		t.Error("the shot should be consumed by the walker")
	}
}

func TestProjectileDestroysEnemy(t *testing.T) {
	tests := []struct {
		tier  config.Tier
		score int
	}{
		{config.Easy, 5},
		{config.Normal, 10},
		{config.Hard, 15},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			g := newTestGame(tt.tier)
			walker := farEnemy(g, Walker)
			g.enemies = append(g.enemies, walker)
			g.projectiles = append(g.projectiles, shotAt(g, walker))

			events := g.resolveCollisions(nil)
			g.compact()

			if len(g.enemies) != 0 || len(g.projectiles) != 0 {
				t.Errorf("enemy and projectile should be removed, got %d/%d", len(g.enemies), len(g.projectiles))
			}
			if g.score != tt.score {
				t.Errorf("score = %d, expected %d", g.score, tt.score)
			}
			if len(g.explosions) != 1 || countEvents(events, core.EventEnemyDestroyed) != 1 {
				t.Errorf("expected one explosion and one destroyed event")
			}
		})
	}
}

func TestSeveralProjectilesOneEnemy(t *testing.T) {
	g := newTestGame(config.Normal)
	flyer := farEnemy(g, Flyer)
	g.enemies = append(g.enemies, flyer)
	for i := 0; i < 3; i++ {
		g.projectiles = append(g.projectiles, shotAt(g, flyer))
	}

	events := g.resolveCollisions(nil)
	g.compact()

	if len(g.projectiles) != 0 {
		t.Errorf("every qualifying projectile should be consumed, %d left", len(g.projectiles))
	}
	if g.score != 10 || len(g.explosions) != 1 || countEvents(events, core.EventEnemyDestroyed) != 1 {
		t.Errorf("enemy should be destroyed once: score=%d explosions=%d", g.score, len(g.explosions))
	}
}

func TestMultiHitEnemy(t *testing.T) {
	tune := config.DefaultTuning()
	tune.Enemies.Walker.Health = 2
	g := New(tune, config.Normal, NewRand(1))
	walker := farEnemy(g, Walker)
	g.enemies = append(g.enemies, walker)
	g.projectiles = append(g.projectiles, shotAt(g, walker))

	g.resolveCollisions(nil)
	g.compact()

	if len(g.enemies) != 1 || g.enemies[0].Health != 1 {
		t.Fatalf("first hit should only wound, got %+v", g.enemies)
	}
	if g.score != 0 {
		t.Errorf("wounding should not score, got %d", g.score)
	}

	g.projectiles = append(g.projectiles, shotAt(g, g.enemies[0]))
	g.resolveCollisions(nil)
	g.compact()
	if len(g.enemies) != 0 || g.score != 10 {
		t.Errorf("second hit should destroy: enemies=%d score=%d", len(g.enemies), g.score)
	}
}

func TestPlayerContactCostsLife(t *testing.T) {
	g := newTestGame(config.Normal)
	g.enemies = append(g.enemies, enemyOnPlayer(g, Walker))

	events := g.resolveCollisions(nil)
	g.compact()

	if g.player.Lives != 2 {
		t.Errorf("lives = %d, expected 2", g.player.Lives)
	}
	if len(g.enemies) != 0 {
		t.Error("the enemy touching the player should be removed")
	}
	if g.gameOver || countEvents(events, core.EventPlayerHit) != 1 {
		t.Errorf("expected a hit without game over, events=%v", events)
	}
}

func TestLastLifeEndsGameSameTick(t *testing.T) {
	g := newTestGame(config.Normal)
	g.player.Lives = 1
	g.enemies = append(g.enemies, enemyOnPlayer(g, Heavy), enemyOnPlayer(g, Walker))

	res := g.Step(input(core.ActionFire), frame)

	if res.State.Lives != 0 || !res.State.GameOver {
		t.Fatalf("state = %+v, expected lives 0 and game over", res.State)
	}
	if !res.Has(core.EventGameOver) || !res.Has(core.EventFireStopped) {
		t.Errorf("expected GameOver and FireStopped events, got %v", res.Events)
	}
	if g.player.Shooting {
		t.Error("game over should stop shooting")
	}

	frozen := g.Step(input(core.ActionRight), frame)
	if frozen.State != res.State || len(frozen.Events) != 0 {
		t.Error("Step after game over should not advance")
	}
}
