package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pokeplaza/internal/core"
)

// KeyMapper translates Bubble Tea key messages to session actions.
// One key may drive several actions; the session picks the ones that
// matter for the current screen.
type KeyMapper struct {
	bindings map[string][]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string][]core.Action{
		"ctrl+c":    {core.ActionQuit},
		"q":         {core.ActionQuit},
		"w":         {core.ActionUp, core.ActionJump},
		"up":        {core.ActionUp, core.ActionJump},
		"s":         {core.ActionDown, core.ActionDuck},
		"down":      {core.ActionDown, core.ActionDuck},
		"a":         {core.ActionLeft},
		"left":      {core.ActionLeft},
		"d":         {core.ActionRight},
		"right":     {core.ActionRight},
		" ":         {core.ActionJump},
		"r":         {core.ActionFire},
		"f":         {core.ActionFire},
		"enter":     {core.ActionConfirm},
		"esc":       {core.ActionBack, core.ActionPause},
		"b":         {core.ActionBack},
		"p":         {core.ActionPause},
		"m":         {core.ActionMenu},
		"backspace": {core.ActionBackspace},
		"1":         {core.ActionSelect1},
		"2":         {core.ActionSelect2},
		"3":         {core.ActionSelect3},
		"c":         {core.ActionCopy},
	}}
}

// MapKey returns the actions bound to a key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	return km.bindings[msg.String()]
}

// MapText handles a key while a text field has focus: printable runes
// are typed and only editing keys keep their bindings.
func (km *KeyMapper) MapText(msg tea.KeyMsg) ([]core.Action, []rune) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []core.Action{core.ActionQuit}, nil
	case tea.KeyEnter:
		return []core.Action{core.ActionConfirm}, nil
	case tea.KeyEsc:
		return []core.Action{core.ActionBack}, nil
	case tea.KeyBackspace:
		return []core.Action{core.ActionBackspace}, nil
	case tea.KeySpace:
		return nil, []rune{' '}
	case tea.KeyRunes:
		return nil, msg.Runes
	}
	return nil, nil
}

// Hold windows. Terminals never report key releases, so a key counts as
// held for a while after each press. The first press waits out the
// auto-repeat delay; repeats arrive quickly after that.
const (
	DefaultFirstHold  = 400 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

type keyState struct {
	last      time.Time
	repeating bool
}

// HeldTracker derives held actions from repeated presses.
type HeldTracker struct {
	firstHold  time.Duration
	repeatHold time.Duration
	keys       map[core.Action]keyState
}

// NewHeldTracker creates a tracker with the given windows.
func NewHeldTracker(firstHold, repeatHold time.Duration) *HeldTracker {
	return &HeldTracker{
		firstHold:  firstHold,
		repeatHold: repeatHold,
		keys:       make(map[core.Action]keyState),
	}
}

// Press records a press of a.
func (h *HeldTracker) Press(a core.Action, now time.Time) {
	st, ok := h.keys[a]
	repeating := ok && now.Sub(st.last) < h.window(st)
	h.keys[a] = keyState{last: now, repeating: repeating}
}

// Release forgets a, for inputs that do report releases.
func (h *HeldTracker) Release(a core.Action) {
	delete(h.keys, a)
}

// Reset forgets every key.
func (h *HeldTracker) Reset() {
	clear(h.keys)
}

// Held reports whether a is still considered down at now.
func (h *HeldTracker) Held(a core.Action, now time.Time) bool {
	st, ok := h.keys[a]
	return ok && now.Sub(st.last) < h.window(st)
}

// Apply marks every held action in frame and drops expired keys.
func (h *HeldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, st := range h.keys {
		if now.Sub(st.last) < h.window(st) {
			frame.Hold(a)
		} else {
			delete(h.keys, a)
		}
	}
}

func (h *HeldTracker) window(st keyState) time.Duration {
	if st.repeating {
		return h.repeatHold
	}
	return h.firstHold
}
