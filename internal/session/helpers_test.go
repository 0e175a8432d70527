package session

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pokeplaza/internal/assets"
	"github.com/vovakirdan/pokeplaza/internal/audio"
	"github.com/vovakirdan/pokeplaza/internal/config"
	"github.com/vovakirdan/pokeplaza/internal/core"
	"github.com/vovakirdan/pokeplaza/internal/games/pokeplaza"
	"github.com/vovakirdan/pokeplaza/internal/settings"
	"github.com/vovakirdan/pokeplaza/internal/storage"
)

const frame = 1.0 / 60

type fakeSink struct {
	calls   []string
	playing map[audio.Handle]bool
	paused  map[audio.Handle]bool
	volume  map[audio.Channel]float64
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		playing: make(map[audio.Handle]bool),
		paused:  make(map[audio.Handle]bool),
		volume:  make(map[audio.Channel]float64),
	}
}

func (s *fakeSink) record(op string, h audio.Handle) {
	s.calls = append(s.calls, fmt.Sprintf("%s %s", op, h))
}

func (s *fakeSink) Play(h audio.Handle) {
	s.record("play", h)
	s.playing[h] = true
}

func (s *fakeSink) Loop(h audio.Handle) {
	s.record("loop", h)
	s.playing[h] = true
}

func (s *fakeSink) Pause(h audio.Handle) {
	s.record("pause", h)
	s.paused[h] = true
}

func (s *fakeSink) Resume(h audio.Handle) {
	s.record("resume", h)
	s.paused[h] = false
}

func (s *fakeSink) Stop(h audio.Handle) {
	s.record("stop", h)
	s.playing[h] = false
}

func (s *fakeSink) Playing(h audio.Handle) bool {
	return s.playing[h]
}

func (s *fakeSink) SetVolume(ch audio.Channel, v float64) { s.volume[ch] = v }

func (s *fakeSink) Close() error { return nil }

func (s *fakeSink) called(call string) bool {
	for _, c := range s.calls {
		if c == call {
			return true
		}
	}
	return false
}

type memStore struct {
	cfg     settings.SessionConfig
	saves   int
	loadErr error
	saveErr error
}

func (s *memStore) Load() (settings.SessionConfig, error) {
	if s.loadErr != nil {
		return settings.Default(), s.loadErr
	}
	return s.cfg, nil
}

func (s *memStore) Save(cfg settings.SessionConfig) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.cfg = cfg
	return nil
}

type fakeArchive struct {
	scores   []storage.ScoreRecord
	sessions []storage.SessionRecord
}

func (a *fakeArchive) SaveScore(r storage.ScoreRecord) (int64, error) {
	a.scores = append(a.scores, r)
	return int64(len(a.scores)), nil
}

func (a *fakeArchive) RecordSession(r storage.SessionRecord) (int64, error) {
	a.sessions = append(a.sessions, r)
	return int64(len(a.sessions)), nil
}

type fakeCatalog struct {
	chars []assets.Character
	fail  bool
}

func (c *fakeCatalog) Characters() []assets.Character { return c.chars }

func (c *fakeCatalog) Art(id string) (pokeplaza.Art, error) {
	if c.fail {
		return pokeplaza.Art{}, fmt.Errorf("%w: sprite for %s", assets.ErrMissing, id)
	}
	return pokeplaza.Art{}, nil
}

type fixture struct {
	m       *Machine
	sink    *fakeSink
	store   *memStore
	archive *fakeArchive
	catalog *fakeCatalog
	logs    *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tune := config.DefaultTuning()
	tune.Player.Lives = 1

	f := &fixture{
		sink:    newFakeSink(),
		store:   &memStore{cfg: settings.Default()},
		archive: &fakeArchive{},
		catalog: &fakeCatalog{chars: []assets.Character{
			{ID: "pika", Name: "PIKA"},
			{ID: "umbreon", Name: "UMBREON"},
		}},
		logs: &bytes.Buffer{},
	}
	f.m = New(Options{
		Store:   f.store,
		History: f.archive,
		Catalog: f.catalog,
		Tuning:  tune,
		Sink:    f.sink,
		Logger:  log.New(f.logs),
		Rand:    func() pokeplaza.Rand { return pokeplaza.NewRand(1) },
	})
	return f
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func typed(text string) core.InputFrame {
	in := core.NewInputFrame()
	for _, r := range text {
		in.Type(r)
	}
	return in
}

func (f *fixture) send(actions ...core.Action) {
	f.m.Update(press(actions...), frame)
}

func (f *fixture) expectPhase(t *testing.T, want Phase) {
	t.Helper()
	if got := f.m.Phase(); got != want {
		t.Fatalf("phase = %s, want %s", got, want)
	}
}

// startRun walks the menus into play with the given tier pick.
func (f *fixture) startRun(t *testing.T, tierPick core.Action) {
	t.Helper()
	f.send(core.ActionConfirm)
	f.expectPhase(t, DifficultySelect)
	f.send(tierPick)
	f.expectPhase(t, CharacterSelect)
	f.send(core.ActionConfirm)
	f.expectPhase(t, Playing)
}

// playUntilOver idles until an enemy runs into the one-life player.
func (f *fixture) playUntilOver(t *testing.T) {
	t.Helper()
	for i := 0; i < 60*60 && f.m.Phase() == Playing; i++ {
		f.m.Update(core.NewInputFrame(), frame)
	}
	f.expectPhase(t, GameOver)
}

var errDisk = errors.New("disk full")
