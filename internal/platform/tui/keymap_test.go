package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pokeplaza/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"quit", runeKey('q'), []core.Action{core.ActionQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionUp, core.ActionJump}},
		{"s", runeKey('s'), []core.Action{core.ActionDown, core.ActionDuck}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}},
		{"d", runeKey('d'), []core.Action{core.ActionRight}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []core.Action{core.ActionJump}},
		{"fire r", runeKey('r'), []core.Action{core.ActionFire}},
		{"fire f", runeKey('f'), []core.Action{core.ActionFire}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionBack, core.ActionPause}},
		{"pause", runeKey('p'), []core.Action{core.ActionPause}},
		{"menu", runeKey('m'), []core.Action{core.ActionMenu}},
		{"pick 2", runeKey('2'), []core.Action{core.ActionSelect2}},
		{"copy", runeKey('c'), []core.Action{core.ActionCopy}},
		{"unbound", runeKey('z'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); !slices.Equal(got, tt.want) {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapText(t *testing.T) {
	km := NewKeyMapper()

	actions, runes := km.MapText(runeKey('q'))
	if len(actions) != 0 || string(runes) != "q" {
		t.Errorf("'q' in a text field should be typed, got %v %q", actions, string(runes))
	}

	if _, runes := km.MapText(tea.KeyMsg{Type: tea.KeySpace}); string(runes) != " " {
		t.Errorf("space should be typed, got %q", string(runes))
	}

	tests := map[tea.KeyType]core.Action{
		tea.KeyCtrlC:     core.ActionQuit,
		tea.KeyEnter:     core.ActionConfirm,
		tea.KeyEsc:       core.ActionBack,
		tea.KeyBackspace: core.ActionBackspace,
	}
	for typ, want := range tests {
		actions, runes := km.MapText(tea.KeyMsg{Type: typ})
		if len(runes) != 0 || !slices.Equal(actions, []core.Action{want}) {
			t.Errorf("MapText(%v) = %v %q, want %v", typ, actions, string(runes), want)
		}
	}
}

func TestHeldTracker(t *testing.T) {
	h := NewHeldTracker(400*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	if !h.Held(core.ActionLeft, t0.Add(350*time.Millisecond)) {
		t.Error("a fresh press should survive the auto-repeat delay")
	}
	if h.Held(core.ActionLeft, t0.Add(450*time.Millisecond)) {
		t.Error("a single tap should expire after the first window")
	}

	// Auto-repeat arrives; the window shrinks.
	h.Press(core.ActionLeft, t0.Add(300*time.Millisecond))
	if !h.Held(core.ActionLeft, t0.Add(350*time.Millisecond)) {
		t.Error("a repeating key is held")
	}
	if h.Held(core.ActionLeft, t0.Add(450*time.Millisecond)) {
		t.Error("a released repeating key should expire quickly")
	}
}

func TestHeldTrackerApply(t *testing.T) {
	h := NewHeldTracker(DefaultFirstHold, DefaultRepeatHold)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionFire, t0)
	h.Press(core.ActionRight, t0.Add(-time.Second))

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(10*time.Millisecond))

	if !frame.Holding(core.ActionFire) {
		t.Error("fire should be held")
	}
	if frame.Holding(core.ActionRight) {
		t.Error("an expired key should not be held")
	}
	if h.Held(core.ActionRight, t0) {
		t.Error("Apply should drop expired keys")
	}

	h.Release(core.ActionFire)
	if h.Held(core.ActionFire, t0) {
		t.Error("Release should forget the key")
	}

	h.Press(core.ActionLeft, t0)
	h.Reset()
	if h.Held(core.ActionLeft, t0) {
		t.Error("Reset should forget every key")
	}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name      string
		last, now time.Time
		want      float64
	}{
		{"first tick", time.Time{}, t0, 0},
		{"normal", t0, t0.Add(20 * time.Millisecond), 0.02},
		{"stall is clamped", t0, t0.Add(3 * time.Second), 0.1},
		{"clock went back", t0, t0.Add(-time.Second), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.last, tt.now); got != tt.want {
				t.Errorf("frameDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}
