package pokeplaza

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/pokeplaza/internal/core"
)

// Visual characters for rendering
const (
	GroundChar     = '═'
	GroundMarkChar = '╪'
	ShotChar       = '•'
	SparkChar      = '*'
	EmberChar      = '·'
	LifeChar       = '♥'
)

// Art holds the sprites used to draw a session. Player faces right;
// the left-facing variant is derived by mirroring.
type Art struct {
	Player       core.Sprite
	PlayerCrouch core.Sprite
	Enemies      [len(Kinds)]core.Sprite
}

// Render draws the field, entities and HUD onto dst, scaling field units to cells.
func (g *Game) Render(dst *core.Screen, art Art) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 3 {
		return
	}
	v := viewport{
		sx: float64(dst.Width()) / g.tune.Field.Width,
		sy: float64(dst.Height()-1) / g.tune.Field.Height,
	}

	g.drawGround(dst, v)

	for _, e := range g.enemies {
		sp := art.Enemies[e.Kind]
		b := e.Bounds()
		sp.Draw(dst, v.col(b.X), v.row(b.Bottom())-sp.Height())
	}

	for _, p := range g.projectiles {
		dst.SetWithColor(v.col(p.X), v.row(p.Y), ShotChar, core.ColorBrightYellow)
	}

	for _, ex := range g.explosions {
		ch, c := SparkChar, core.ColorOrange
		if ex.Progress() > 0.5 {
			ch, c = EmberChar, core.ColorRed
		}
		for _, pt := range ex.Particles {
			dst.SetWithColor(v.col(pt.X), v.row(pt.Y), ch, c)
		}
	}

	g.drawPlayer(dst, v, art)
	g.drawHUD(dst)
}

type viewport struct {
	sx, sy float64
}

// col maps a field x to a screen column.
func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

// row maps a field y to a screen row. Row 0 is reserved for the HUD.
func (v viewport) row(y float64) int {
	return 1 + int(math.Floor(y*v.sy))
}

func (g *Game) drawGround(dst *core.Screen, v viewport) {
	y := v.row(g.tune.Field.GroundY)
	dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGreen)

	// Tick marks scroll left to show movement.
	spacing := g.tune.Field.Width / 10
	for x := -math.Mod(g.scroll, spacing); x < g.tune.Field.Width; x += spacing {
		dst.SetWithColor(v.col(x), y, GroundMarkChar, core.ColorBrightGreen)
	}
	for row := y + 1; row < dst.Height(); row++ {
		dst.DrawHLine(0, row, dst.Width(), '░', core.ColorGray)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, art Art) {
	sp := art.Player
	if g.player.Crouching && !art.PlayerCrouch.Empty() {
		sp = art.PlayerCrouch
	}
	if g.player.Facing < 0 {
		sp = sp.Mirror()
	}
	b := g.player.Bounds()
	sp.Draw(dst, v.col(b.X), v.row(b.Bottom())-sp.Height())
}

func (g *Game) drawHUD(dst *core.Screen) {
	lives := strings.Repeat(string(LifeChar), g.player.Lives)
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextColor(16, 0, "Lives: ", core.ColorBrightWhite)
	dst.DrawTextColor(23, 0, lives, core.ColorBrightRed)

	right := fmt.Sprintf("%s  x%.2f", g.tier, g.speedMul)
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorGray)
}
