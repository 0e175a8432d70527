package storage

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/pokeplaza/internal/highscore"
	"github.com/vovakirdan/pokeplaza/internal/settings"
)

func TestFileStoreMissingFileYieldsDefaults(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), ConfigFile))

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() of a missing file should not fail: %v", err)
	}
	if cfg.MusicVolume != 50 || cfg.SfxVolume != 50 || cfg.Scores.Len() != 0 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "sub", ConfigFile))

	cfg := settings.Default()
	cfg.SetMusicVolume(37.5)
	cfg.SetSfxVolume(0.1)
	cfg.Scores.Add("Ash Ketchum", 120, "Dificil")
	cfg.Scores.Add("Misty", 80, "Facil")
	cfg.Scores.Add("  spaced  ", 80, "Normal")

	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if math.Abs(loaded.MusicVolume-37.5) > 1e-9 || math.Abs(loaded.SfxVolume-0.1) > 1e-9 {
		t.Errorf("volumes = %v/%v, expected 37.5/0.1", loaded.MusicVolume, loaded.SfxVolume)
	}
	want, got := cfg.Scores.Entries(), loaded.Scores.Entries()
	if len(want) != len(got) {
		t.Fatalf("entries = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	cfg := settings.SessionConfig{MusicVolume: 50, SfxVolume: 72.25}
	cfg.Scores.Add("Red", 30, "Normal")

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatal(err)
	}

	expected := "50\n72.25\n1\nRed\n30\nNormal\n"
	if buf.String() != expected {
		t.Errorf("Encode() = %q, expected %q", buf.String(), expected)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		music   float64
		count   int
	}{
		{name: "empty table", input: "10\n20\n0\n", music: 10},
		{name: "crlf line endings", input: "10\r\n20\r\n1\r\nAsh\r\n5\r\nNormal\r\n", music: 10, count: 1},
		{name: "comma decimal", input: "12,5\n20\n0\n", music: 12.5},
		{name: "volume clamped", input: "250\n20\n0\n", music: 100},
		{name: "not a number", input: "loud\n20\n0\n", wantErr: true},
		{name: "truncated entries", input: "50\n50\n2\nAsh\n10\nNormal\n", wantErr: true},
		{name: "bad score", input: "50\n50\n1\nAsh\nten\nNormal\n", wantErr: true},
		{name: "negative count", input: "50\n50\n-1\n", wantErr: true},
		{name: "empty file", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if cfg.MusicVolume != 50 || cfg.Scores.Len() != 0 {
					t.Errorf("errors should come with defaults, got %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if cfg.MusicVolume != tt.music {
				t.Errorf("MusicVolume = %v, expected %v", cfg.MusicVolume, tt.music)
			}
			if cfg.Scores.Len() != tt.count {
				t.Errorf("entries = %d, expected %d", cfg.Scores.Len(), tt.count)
			}
		})
	}
}

func TestDecodeOversizedTable(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("50\n50\n12\n")
	for i := 0; i < 12; i++ {
		sb.WriteString("p\n")
		sb.WriteString(strings.Repeat("1", i%3+1) + "\n")
		sb.WriteString("Normal\n")
	}

	cfg, err := Decode(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.Scores.Len() != highscore.MaxEntries {
		t.Errorf("entries = %d, expected %d", cfg.Scores.Len(), highscore.MaxEntries)
	}
	if cfg.Scores.Best() != 111 {
		t.Errorf("Best() = %d, expected 111", cfg.Scores.Best())
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte("garbage\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileStore(path).Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
	if cfg.MusicVolume != settings.DefaultVolume {
		t.Errorf("corrupt files should yield defaults, got %+v", cfg)
	}
}
