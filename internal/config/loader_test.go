package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultTuning() {
		t.Errorf("embedded YAML and DefaultTuning() disagree:\n%+v\n%+v", cfg, DefaultTuning())
	}
}

func TestDefaultTuningValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Errorf("DefaultTuning() should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("spawn:\n  reroll_chance: 0.5\nplayer:\n  lives: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Spawn.RerollChance != 0.5 || cfg.Player.Lives != 5 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Spawn, cfg.Player)
	}
	if cfg.Field.Width != 1000 {
		t.Errorf("unspecified keys should keep defaults, width = %v", cfg.Field.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  jump_velocity: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(invalid)
	if err == nil {
		t.Error("downward jump velocity should fail validation")
	}
	if cfg != DefaultTuning() {
		t.Error("failed loads should still return usable defaults")
	}
}
