package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pokeplaza/internal/core"
	"github.com/vovakirdan/pokeplaza/internal/session"
)

// Catalog supplies the decorative art drawn around the game.
type Catalog interface {
	Title() string
	Banner() []string
	Sprite(path, color string) (core.Sprite, error)
}

// Options configures a Model.
type Options struct {
	FPS     int
	Catalog Catalog
	// Clipboard enables copying the score table. Remote sessions have
	// no clipboard of their own.
	Clipboard bool
	Width     int
	Height    int
}

// Model is the Bubble Tea model for one session.
type Model struct {
	machine   *session.Machine
	catalog   Catalog
	keys      *KeyMapper
	held      *HeldTracker
	frame     *core.InputFrame
	screen    *core.Screen
	board     *Scoreboard
	fps       int
	width     int
	height    int
	last      time.Time
	phase     session.Phase
	mouseFire bool
	clock     func() time.Time
}

// NewModel wraps a session machine.
func NewModel(machine *session.Machine, opts Options) Model {
	defaults := core.DefaultConfig()
	if opts.FPS <= 0 {
		opts.FPS = defaults.TickRate
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = defaults.ScreenW, defaults.ScreenH
	}

	frame := core.NewInputFrame()
	board := NewScoreboard(opts.Width, opts.Height, opts.Clipboard)
	return Model{
		machine: machine,
		catalog: opts.Catalog,
		keys:    NewKeyMapper(),
		held:    NewHeldTracker(DefaultFirstHold, DefaultRepeatHold),
		frame:   &frame,
		screen:  core.NewScreen(opts.Width, opts.Height),
		board:   &board,
		fps:     opts.FPS,
		width:   opts.Width,
		height:  opts.Height,
		phase:   machine.Phase(),
		clock:   time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, m.clock())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.board.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key for the next frame.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.machine.TextInput() {
		actions, runes := m.keys.MapText(msg)
		for _, r := range runes {
			m.frame.Type(r)
		}
		for _, a := range actions {
			m.frame.Press(a)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.machine.Phase() == session.HighScores {
		cmd = m.board.Update(msg)
	}
	for _, a := range m.keys.MapKey(msg) {
		m.frame.Press(a)
		m.held.Press(a, now)
	}
	return m, cmd
}

// handleMouse maps the left button to fire. Mice report releases.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.frame.Press(core.ActionFire)
		m.mouseFire = true
	case tea.MouseActionRelease:
		m.mouseFire = false
		m.held.Release(core.ActionFire)
	}
	return m, nil
}

// handleTick runs one session frame with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.last, now)
	m.last = now

	m.held.Apply(m.frame, now)
	if m.mouseFire {
		m.frame.Hold(core.ActionFire)
	}
	m.machine.Update(*m.frame, dt)
	m.frame.Clear()

	if phase := m.machine.Phase(); phase != m.phase {
		m.phase = phase
		m.held.Reset()
		m.mouseFire = false
		if phase == session.HighScores {
			m.board.SetEntries(m.machine.Config().Scores.Entries())
		}
	}
	if m.phase == session.Closed {
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// Run starts the Bubble Tea program and closes the session when it ends.
func Run(machine *session.Machine, opts Options) error {
	p := tea.NewProgram(
		NewModel(machine, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	if closeErr := machine.Close(); err == nil {
		err = closeErr
	}
	return err
}
