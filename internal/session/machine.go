package session

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pokeplaza/internal/assets"
	"github.com/vovakirdan/pokeplaza/internal/audio"
	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
	"github.com/vovakirdan/pokeplaza/internal/games/pokeplaza"
	"github.com/vovakirdan/pokeplaza/internal/highscore"
	"github.com/vovakirdan/pokeplaza/internal/settings"
	"github.com/vovakirdan/pokeplaza/internal/storage"
)

// Store reads and writes the whole session configuration.
type Store interface {
	Load() (settings.SessionConfig, error)
	Save(cfg settings.SessionConfig) error
}

// Archive keeps the long-term score and run history.
type Archive interface {
	SaveScore(r storage.ScoreRecord) (int64, error)
	RecordSession(r storage.SessionRecord) (int64, error)
}

// Catalog provides the selectable characters and their sprites.
type Catalog interface {
	Characters() []assets.Character
	Art(characterID string) (pokeplaza.Art, error)
}

// Options configures a Machine. Catalog is required; everything else
// has a fallback.
type Options struct {
	Store   Store
	History Archive
	Catalog Catalog
	Tuning  config.Tuning
	Sink    audio.Sink
	Logger  *log.Logger
	// Rand creates the random source for each new run.
	Rand func() pokeplaza.Rand
}

// Main menu entries.
const (
	MenuPlay = iota
	MenuSettings
	MenuScores
	MenuQuit
)

// MainItems labels the main menu entries.
var MainItems = []string{"Play", "Settings", "High Scores", "Quit"}

// Settings rows.
const (
	SettingMusic = iota
	SettingSfx
	SettingBack
)

// SettingItems labels the settings rows.
var SettingItems = []string{"Music", "Effects", "Back"}

// Post-game entries.
const (
	PostRetry = iota
	PostScores
	PostMenu
)

// PostItems labels the post-game entries.
var PostItems = []string{"Retry", "High Scores", "Main Menu"}

// Machine is one player's session. It is not safe for concurrent use;
// the owner calls Update once per frame.
type Machine struct {
	phase Phase

	cfg     settings.SessionConfig
	store   Store
	history Archive
	log     *log.Logger
	sink    audio.Sink
	music   *director
	catalog Catalog
	tune    config.Tuning
	newRand func() pokeplaza.Rand

	tier      config.Tier
	character assets.Character
	game      *pokeplaza.Game
	art       pokeplaza.Art
	archived  bool
	lastScore int

	cursor int
	name   []rune
}

// New loads the persisted configuration and opens the main menu.
func New(opts Options) *Machine {
	m := &Machine{
		phase:   MainMenu,
		store:   opts.Store,
		history: opts.History,
		log:     opts.Logger,
		sink:    opts.Sink,
		catalog: opts.Catalog,
		tune:    opts.Tuning,
		newRand: opts.Rand,
		tier:    config.Normal,
	}
	if m.log == nil {
		m.log = log.New(io.Discard)
	}
	if m.sink == nil {
		m.sink = audio.Silent{}
	}
	if m.newRand == nil {
		m.newRand = func() pokeplaza.Rand { return pokeplaza.NewRand(0) }
	}
	m.music = newDirector(m.sink)

	m.cfg = settings.Default()
	if m.store != nil {
		cfg, err := m.store.Load()
		if err != nil {
			m.log.Warn("cannot load config, using defaults", "err", err)
		} else {
			m.cfg = cfg
		}
	}
	if chars := m.catalog.Characters(); len(chars) > 0 {
		m.character = chars[0]
	}

	m.sink.SetVolume(audio.Music, m.cfg.MusicVolume)
	m.sink.SetVolume(audio.Sfx, m.cfg.SfxVolume)
	m.music.menu()
	return m
}

// Update advances the session by one frame.
func (m *Machine) Update(in core.InputFrame, dt float64) {
	if m.phase == Closed {
		return
	}
	if in.Has(core.ActionQuit) {
		m.Close()
		return
	}

	switch m.phase {
	case MainMenu:
		m.updateMainMenu(in)
	case DifficultySelect:
		m.updateDifficulty(in)
	case CharacterSelect:
		m.updateCharacter(in)
	case Settings:
		m.updateSettings(in)
	case HighScores:
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
			m.fire(Back)
		}
	case Playing:
		m.updatePlaying(in, dt)
	case Paused:
		m.updatePaused(in)
	case GameOver:
		m.updateGameOver(in)
	case NameEntry:
		m.updateNameEntry(in)
	case PostGame:
		m.updatePostGame(in)
	}
}

// Close archives an unfinished run, silences audio and flushes the
// configuration. Later updates are ignored.
func (m *Machine) Close() error {
	if m.phase == Closed {
		return nil
	}
	if m.phase == Playing || m.phase == Paused {
		m.archive(storage.OutcomeAbandoned)
	}
	m.sink.Stop(audio.FireLoop)
	m.music.stop()
	err := m.persist()
	m.fire(Close)
	return err
}

func (m *Machine) fire(e Event) {
	from := m.phase
	to := Next(from, e)
	if to == from {
		return
	}
	m.phase = to
	m.log.Debug("phase change", "from", from, "event", e, "to", to)
	m.enter(from, to)
}

func (m *Machine) enter(from, to Phase) {
	if to.Menu() {
		m.music.menu()
	}

	switch to {
	case DifficultySelect:
		m.cursor = int(m.tier)
	case CharacterSelect:
		m.cursor = 0
		for i, c := range m.catalog.Characters() {
			if c.ID == m.character.ID {
				m.cursor = i
			}
		}
	case Playing:
		if from == Paused {
			m.music.resume()
			if m.game.Player().Shooting {
				m.sink.Resume(audio.FireLoop)
			}
			return
		}
		if !m.startGame() {
			m.fire(AssetFailure)
		}
	case Paused:
		m.music.pause()
		m.sink.Pause(audio.FireLoop)
	case NameEntry:
		m.name = m.name[:0]
	case MainMenu:
		m.game = nil
		m.cursor = 0
	default:
		m.cursor = 0
	}
}

func (m *Machine) startGame() bool {
	art, err := m.catalog.Art(m.character.ID)
	if err != nil {
		m.log.Error("cannot load gameplay sprites", "character", m.character.ID, "err", err)
		return false
	}
	m.art = art
	m.game = pokeplaza.New(m.tune, m.tier, m.newRand())
	m.archived = false
	m.lastScore = 0
	m.music.game()
	m.log.Info("run started", "character", m.character.ID, "tier", m.tier)
	return true
}

func (m *Machine) updateMainMenu(in core.InputFrame) {
	choice, ok := m.navigate(in, len(MainItems), core.ActionUp, core.ActionDown)
	if !ok {
		return
	}
	switch choice {
	case MenuPlay:
		m.fire(Play)
	case MenuSettings:
		m.fire(OpenSettings)
	case MenuScores:
		m.fire(OpenScores)
	case MenuQuit:
		m.Close()
	}
}

func (m *Machine) updateDifficulty(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		m.fire(Back)
		return
	}
	if choice, ok := m.navigate(in, len(config.Tiers), core.ActionUp, core.ActionDown); ok {
		m.tier = config.Tiers[choice]
		m.fire(Selected)
	}
}

func (m *Machine) updateCharacter(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		m.fire(Back)
		return
	}
	chars := m.catalog.Characters()
	if len(chars) == 0 {
		return
	}
	if choice, ok := m.navigate(in, len(chars), core.ActionLeft, core.ActionRight); ok {
		m.character = chars[choice]
		m.fire(Selected)
	}
}

func (m *Machine) updateSettings(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		m.fire(Back)
		return
	}
	if in.Has(core.ActionUp) {
		m.cursor = wrap(m.cursor-1, len(SettingItems))
	}
	if in.Has(core.ActionDown) {
		m.cursor = wrap(m.cursor+1, len(SettingItems))
	}

	steps := 0
	if in.Has(core.ActionLeft) {
		steps--
	}
	if in.Has(core.ActionRight) {
		steps++
	}

	switch {
	case m.cursor == SettingBack && in.Has(core.ActionConfirm):
		m.fire(Back)
	case steps != 0 && m.cursor == SettingMusic:
		m.cfg.AdjustMusic(steps)
		m.sink.SetVolume(audio.Music, m.cfg.MusicVolume)
		m.persist()
	case steps != 0 && m.cursor == SettingSfx:
		m.cfg.AdjustSfx(steps)
		m.sink.SetVolume(audio.Sfx, m.cfg.SfxVolume)
		m.sink.Play(audio.Hit)
		m.persist()
	}
}

func (m *Machine) updatePlaying(in core.InputFrame, dt float64) {
	if in.Has(core.ActionPause) {
		m.fire(TogglePause)
		return
	}

	res := m.game.Step(in, dt)
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventFireStarted:
			m.sink.Loop(audio.FireLoop)
		case core.EventFireStopped:
			m.sink.Stop(audio.FireLoop)
		case core.EventEnemyDestroyed:
			m.sink.Play(audio.Explosion)
		case core.EventPlayerHit:
			m.sink.Play(audio.Hit)
		}
	}
	m.lastScore = res.State.Score

	if res.State.GameOver {
		m.sink.Stop(audio.FireLoop)
		m.archive(storage.OutcomeGameOver)
		m.log.Info("run over", "score", res.State.Score, "tier", m.tier)
		m.fire(LivesExhausted)
		return
	}
	m.music.tick()
}

func (m *Machine) updatePaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause):
		m.fire(TogglePause)
	case in.Has(core.ActionMenu):
		m.game.StopFire()
		m.sink.Stop(audio.FireLoop)
		m.archive(storage.OutcomeAbandoned)
		m.log.Info("run abandoned", "score", m.lastScore)
		m.fire(Abandon)
	}
}

func (m *Machine) updateGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		m.fire(Skip)
	case in.Has(core.ActionConfirm):
		if m.cfg.Scores.Qualifies(m.lastScore) {
			m.fire(EnterName)
		} else {
			m.fire(Skip)
		}
	}
}

func (m *Machine) updateNameEntry(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		m.fire(Skip)
		return
	}
	for _, r := range in.Text {
		if len(m.name) < highscore.MaxNameLen && nameRune(r) {
			m.name = append(m.name, r)
		}
	}
	if in.Has(core.ActionBackspace) && len(m.name) > 0 {
		m.name = m.name[:len(m.name)-1]
	}
	if in.Has(core.ActionConfirm) {
		m.submit()
	}
}

func (m *Machine) submit() {
	name := strings.TrimSpace(string(m.name))
	if name == "" {
		return
	}

	m.cfg.Scores.Add(name, m.lastScore, m.tier.Label())
	m.persist()
	if m.history != nil {
		_, err := m.history.SaveScore(storage.ScoreRecord{
			Name:       name,
			Score:      m.lastScore,
			Difficulty: m.tier.Label(),
			Character:  m.character.ID,
		})
		if err != nil {
			m.log.Warn("cannot archive score", "err", err)
		}
	}
	m.fire(Submit)
}

func (m *Machine) updatePostGame(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		m.fire(ToMenu)
		return
	}
	choice, ok := m.navigate(in, len(PostItems), core.ActionUp, core.ActionDown)
	if !ok {
		return
	}
	switch choice {
	case PostRetry:
		m.fire(Retry)
	case PostScores:
		m.fire(ViewScores)
	case PostMenu:
		m.fire(ToMenu)
	}
}

// navigate moves the cursor over n entries and reports a confirmed or
// directly picked entry.
func (m *Machine) navigate(in core.InputFrame, n int, prev, next core.Action) (int, bool) {
	if in.Has(prev) {
		m.cursor = wrap(m.cursor-1, n)
	}
	if in.Has(next) {
		m.cursor = wrap(m.cursor+1, n)
	}
	picks := [...]core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3}
	for i, a := range picks {
		if i < n && in.Has(a) {
			m.cursor = i
			return i, true
		}
	}
	return m.cursor, in.Has(core.ActionConfirm)
}

// persist writes the configuration; failures only cost durability.
func (m *Machine) persist() error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(m.cfg); err != nil {
		m.log.Warn("cannot save config", "err", err)
		return err
	}
	return nil
}

// archive records the current run once.
func (m *Machine) archive(outcome string) {
	if m.history == nil || m.game == nil || m.archived {
		return
	}
	m.archived = true
	_, err := m.history.RecordSession(storage.SessionRecord{
		Character:  m.character.ID,
		Difficulty: m.tier.Label(),
		Score:      m.game.State().Score,
		Duration:   time.Duration(m.game.Elapsed() * float64(time.Second)),
		Outcome:    outcome,
	})
	if err != nil {
		m.log.Warn("cannot archive run", "err", err)
	}
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func nameRune(r rune) bool {
	return r == ' ' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Phase returns the current screen.
func (m *Machine) Phase() Phase { return m.phase }

// Cursor returns the highlighted entry of the current menu.
func (m *Machine) Cursor() int { return m.cursor }

// Config returns the session configuration.
func (m *Machine) Config() settings.SessionConfig { return m.cfg }

// Tier returns the selected difficulty.
func (m *Machine) Tier() config.Tier { return m.tier }

// Character returns the selected character.
func (m *Machine) Character() assets.Character { return m.character }

// Characters lists the selectable characters.
func (m *Machine) Characters() []assets.Character { return m.catalog.Characters() }

// Game returns the current run, or nil outside play.
func (m *Machine) Game() *pokeplaza.Game { return m.game }

// Art returns the sprites of the current run.
func (m *Machine) Art() pokeplaza.Art { return m.art }

// Name returns the name typed so far.
func (m *Machine) Name() string { return string(m.name) }

// LastScore returns the score of the current or last run.
func (m *Machine) LastScore() int { return m.lastScore }

// Qualifies reports whether the last score ranks in the table.
func (m *Machine) Qualifies() bool { return m.cfg.Scores.Qualifies(m.lastScore) }

// TextInput reports whether the session expects typed text.
func (m *Machine) TextInput() bool { return m.phase == NameEntry }
