package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pokeplaza/internal/assets"
	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
	"github.com/vovakirdan/pokeplaza/internal/highscore"
	"github.com/vovakirdan/pokeplaza/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	catalog, err := assets.Open("")
	if err != nil {
		t.Fatal(err)
	}
	machine := session.New(session.Options{Catalog: catalog, Tuning: config.DefaultTuning()})
	return NewModel(machine, Options{FPS: 60, Catalog: catalog, Width: 100, Height: 30})
}

// step feeds a message and then one tick.
func step(t *testing.T, m Model, msg tea.Msg, now time.Time) Model {
	t.Helper()
	if msg != nil {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	next, _ := m.Update(TickMsg(now))
	return next.(Model)
}

func TestModelDrivesSession(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(1000, 0)

	if view := m.View(); !strings.Contains(view, "Play") {
		t.Errorf("main menu view should list entries, got %q", view)
	}

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	for i := 0; i < 3; i++ {
		now = now.Add(16 * time.Millisecond)
		m = step(t, m, enter, now)
	}
	if m.machine.Phase() != session.Playing {
		t.Fatalf("phase = %s, want Playing", m.machine.Phase())
	}
	if view := m.View(); !strings.Contains(view, "Score") {
		t.Error("play view should show the HUD")
	}

	now = now.Add(16 * time.Millisecond)
	m = step(t, m, runeKey('p'), now)
	if m.machine.Phase() != session.Paused {
		t.Fatalf("phase = %s, want Paused", m.machine.Phase())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the overlay")
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	next, cmd = m.Update(TickMsg(now.Add(16 * time.Millisecond)))
	m = next.(Model)
	if m.machine.Phase() != session.Closed {
		t.Fatalf("phase = %s, want Closed", m.machine.Phase())
	}
	if cmd == nil {
		t.Fatal("closing should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("closing should return tea.Quit")
	}
}

func TestModelHoldsKeysBetweenRepeats(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(1000, 0)
	m.clock = func() time.Time { return now }
	for i := 0; i < 3; i++ {
		now = now.Add(16 * time.Millisecond)
		m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}, now)
	}

	startX := m.machine.Game().Player().X
	now = now.Add(16 * time.Millisecond)
	m = step(t, m, runeKey('d'), now)
	for i := 0; i < 10; i++ {
		now = now.Add(16 * time.Millisecond)
		m = step(t, m, nil, now)
	}
	movedX := m.machine.Game().Player().X
	if movedX <= startX {
		t.Errorf("player x = %v, want movement past %v while the key is held", movedX, startX)
	}

	// No repeats arrive: the key counts as released.
	for i := 0; i < 40; i++ {
		now = now.Add(16 * time.Millisecond)
		m = step(t, m, nil, now)
	}
	stopped := m.machine.Game().Player().X
	now = now.Add(16 * time.Millisecond)
	m = step(t, m, nil, now)
	if got := m.machine.Game().Player().X; got != stopped {
		t.Errorf("player kept moving after the hold window: %v -> %v", stopped, got)
	}
}

func TestModelMouseFires(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(1000, 0)
	for i := 0; i < 3; i++ {
		now = now.Add(16 * time.Millisecond)
		m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}, now)
	}

	now = now.Add(16 * time.Millisecond)
	m = step(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, now)
	if !m.machine.Game().Player().Shooting {
		t.Fatal("left mouse should fire")
	}

	for i := 0; i < 40; i++ {
		now = now.Add(16 * time.Millisecond)
		m = step(t, m, nil, now)
	}
	if !m.machine.Game().Player().Shooting {
		t.Error("a held mouse button keeps firing")
	}

	now = now.Add(16 * time.Millisecond)
	m = step(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, now)
	if m.machine.Game().Player().Shooting {
		t.Error("releasing the button stops firing")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestScoresText(t *testing.T) {
	table := highscore.New([]highscore.Entry{
		{Name: "Ash", Score: 120, Difficulty: "Dificil"},
		{Name: "Misty", Score: 300, Difficulty: "Normal"},
	})

	got := ScoresText(table.Entries())
	want := "Rank\tName\tScore\tDifficulty\n1\tMisty\t300\tNormal\n2\tAsh\t120\tDificil\n"
	if got != want {
		t.Errorf("ScoresText() = %q, want %q", got, want)
	}
}

func TestVolumeBar(t *testing.T) {
	tests := map[float64]int{0: 0, 50: 10, 100: 20}
	for v, filled := range tests {
		bar := volumeBar(v)
		if got := strings.Count(bar, "█"); got != filled {
			t.Errorf("volumeBar(%v) has %d filled slots, want %d", v, got, filled)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "hi", core.ColorRed)
	s.DrawText(3, 1, "there")

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "there") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should emit one line per row, got %q", out)
	}
}

func TestDrawOverlay(t *testing.T) {
	s := core.NewScreen(30, 9)
	s.Fill('#')
	drawOverlay(s, []string{"PAUSED"}, core.ColorWhite)

	if !strings.Contains(s.Row(4), "PAUSED") {
		t.Errorf("overlay text missing from middle row: %q", s.Row(4))
	}
	if s.Get(0, 0) != '#' {
		t.Error("overlay should leave the rest of the screen alone")
	}
}

func TestUserDir(t *testing.T) {
	tests := map[string]string{
		"ash":         "ash",
		"ash.ketchum": "ash_ketchum",
		"../../etc":   "etc",
		"":            "anonymous",
		"///":         "anonymous",
	}
	for in, want := range tests {
		if got := userDir(in); got != want {
			t.Errorf("userDir(%q) = %q, want %q", in, got, want)
		}
	}
}
