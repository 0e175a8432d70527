package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/pokeplaza/internal/highscore"
	"github.com/vovakirdan/pokeplaza/internal/settings"
)

// ConfigFile is the file name of the persisted session configuration.
const ConfigFile = "game_config.dat"

// ErrCorrupt reports a config file that could not be parsed.
// Load still returns usable defaults alongside it.
var ErrCorrupt = errors.New("storage: corrupt config file")

// FileStore reads and writes the session configuration as newline-delimited
// text: music volume, sfx volume, entry count, then name/score/label per entry.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the given path. The file is not
// touched until Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the configuration. A missing file yields defaults and no error.
// A malformed file yields defaults and an error wrapping ErrCorrupt.
func (s *FileStore) Load() (settings.SessionConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings.Default(), nil
	}
	if err != nil {
		return settings.Default(), fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return settings.Default(), fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return cfg, nil
}

// Save writes the configuration, replacing the file atomically.
func (s *FileStore) Save(cfg settings.SessionConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ConfigFile+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := Encode(w, cfg); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot encode config: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write config: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Encode writes the text layout. Floats use '.' regardless of locale.
func Encode(w io.Writer, cfg settings.SessionConfig) error {
	entries := cfg.Scores.Entries()
	lines := []string{
		strconv.FormatFloat(settings.ClampVolume(cfg.MusicVolume), 'f', -1, 64),
		strconv.FormatFloat(settings.ClampVolume(cfg.SfxVolume), 'f', -1, 64),
		strconv.Itoa(len(entries)),
	}
	for _, e := range entries {
		lines = append(lines,
			highscore.SanitizeName(e.Name),
			strconv.Itoa(e.Score),
			singleLine(e.Difficulty),
		)
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses the text layout. Volumes out of range are clamped and
// tables longer than highscore.MaxEntries are truncated after sorting.
func Decode(r io.Reader) (settings.SessionConfig, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("line %d: unexpected end of file", lineNo+1)
		}
		lineNo++
		return strings.TrimSuffix(sc.Text(), "\r"), nil
	}
	number := func(parse func(string) error) error {
		line, err := next()
		if err != nil {
			return err
		}
		if err := parse(strings.TrimSpace(line)); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		return nil
	}

	cfg := settings.Default()
	var count int
	if err := number(func(s string) (err error) { cfg.MusicVolume, err = parseVolume(s); return }); err != nil {
		return settings.Default(), err
	}
	if err := number(func(s string) (err error) { cfg.SfxVolume, err = parseVolume(s); return }); err != nil {
		return settings.Default(), err
	}
	if err := number(func(s string) (err error) { count, err = strconv.Atoi(s); return }); err != nil {
		return settings.Default(), err
	}
	if count < 0 {
		return settings.Default(), fmt.Errorf("line %d: negative entry count %d", lineNo, count)
	}

	entries := make([]highscore.Entry, 0, min(count, highscore.MaxEntries))
	for i := 0; i < count; i++ {
		var e highscore.Entry
		name, err := next()
		if err != nil {
			return settings.Default(), err
		}
		e.Name = name
		if err := number(func(s string) (err error) { e.Score, err = strconv.Atoi(s); return }); err != nil {
			return settings.Default(), err
		}
		label, err := next()
		if err != nil {
			return settings.Default(), err
		}
		e.Difficulty = strings.TrimSpace(label)
		entries = append(entries, e)
	}
	cfg.Scores = highscore.New(entries)
	return cfg, nil
}

func parseVolume(s string) (float64, error) {
	// Files written under a comma-decimal locale are accepted too.
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, err
	}
	return settings.ClampVolume(v), nil
}

func singleLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
