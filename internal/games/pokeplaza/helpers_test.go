package pokeplaza

import (
	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
)

const frame = 1.0 / 60

// scriptedRand replays fixed values, cycling when exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

func newTestGame(tier config.Tier) *Game {
	return New(config.DefaultTuning(), tier, NewRand(42))
}

// input builds a frame with the given held actions.
func input(held ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range held {
		f.Hold(a)
	}
	return f
}

// press builds a frame with the given pressed actions.
func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

// enemyOnPlayer returns an enemy of kind k overlapping the player's hitbox.
func enemyOnPlayer(g *Game, k Kind) Enemy {
	e := NewEnemy(k, g.tune, &scriptedRand{})
	pb := g.player.Hitbox()
	e.X = pb.X
	e.Y = g.player.Y
	e.BaseY = e.Y
	return e
}
