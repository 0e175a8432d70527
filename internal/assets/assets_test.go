package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/pokeplaza/internal/core"
	"github.com/vovakirdan/pokeplaza/internal/games/pokeplaza"
)

const testManifest = `
title: Test
banner: banner.txt
characters:
  - id: hero
    name: HERO
    sprite: hero.txt
    color: yellow
enemies:
  walker: {sprite: w.txt, color: red}
  flyer: {sprite: f.txt}
  heavy: {sprite: h.txt, color: orange}
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		ManifestFile: {Data: []byte(testManifest)},
		"banner.txt": {Data: []byte("BIG\r\nTITLE\r\n\r\n")},
		"hero.txt":   {Data: []byte(" o\n/|\\\n")},
		"w.txt":      {Data: []byte("W")},
		"f.txt":      {Data: []byte("F")},
		"h.txt":      {Data: []byte("HH")},
	}
}

func TestEmbeddedCatalog(t *testing.T) {
	c, err := Open("")
	if err != nil {
		t.Fatalf("embedded catalog should load: %v", err)
	}
	if len(c.Characters()) != 2 {
		t.Errorf("expected 2 characters, got %d", len(c.Characters()))
	}
	if len(c.Banner()) == 0 {
		t.Error("embedded banner should load")
	}
	for _, ch := range c.Characters() {
		art, err := c.Art(ch.ID)
		if err != nil {
			t.Errorf("Art(%q) failed: %v", ch.ID, err)
			continue
		}
		if art.Player.Empty() || art.PlayerCrouch.Empty() {
			t.Errorf("%s: player sprites missing", ch.ID)
		}
		for _, k := range pokeplaza.Kinds {
			if art.Enemies[k].Empty() {
				t.Errorf("%s: enemy %s sprite missing", ch.ID, k)
			}
		}
	}
}

func TestLoadFromFS(t *testing.T) {
	c, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	banner := c.Banner()
	if len(banner) != 2 || banner[1] != "TITLE" {
		t.Errorf("Banner() = %q, expected 2 clean rows", banner)
	}

	art, err := c.Art("hero")
	if err != nil {
		t.Fatalf("Art() failed: %v", err)
	}
	if art.Player.Height() != 2 || art.Player.Color != core.ColorYellow {
		t.Errorf("player sprite = %+v", art.Player)
	}
	if !art.PlayerCrouch.Empty() {
		t.Error("no crouch sprite was configured")
	}
	if art.Enemies[pokeplaza.Heavy].Rows[0] != "HH" || art.Enemies[pokeplaza.Flyer].Color != core.ColorDefault {
		t.Errorf("enemy sprites = %+v", art.Enemies)
	}
}

func TestMissingManifestIsFatal(t *testing.T) {
	fsys := testFS()
	delete(fsys, ManifestFile)

	if _, err := Load(fsys); !errors.Is(err, ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
}

func TestInvalidManifest(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "characters: [",
		"no characters": "title: x\n",
		"duplicate id":  "characters:\n  - id: a\n  - id: a\n",
	}
	for name, manifest := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := testFS()
			fsys[ManifestFile] = &fstest.MapFile{Data: []byte(manifest)}
			if _, err := Load(fsys); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMissingDecorativeBanner(t *testing.T) {
	fsys := testFS()
	delete(fsys, "banner.txt")

	c, err := Load(fsys)
	if err != nil {
		t.Fatalf("a missing banner must not fail the catalog: %v", err)
	}
	if c.Banner() != nil {
		t.Error("missing banner should degrade to nothing")
	}
}

func TestMissingGameplaySprite(t *testing.T) {
	fsys := testFS()
	delete(fsys, "h.txt")

	c, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, err := c.Art("hero"); !errors.Is(err, ErrMissing) {
		t.Errorf("missing enemy sprite should be ErrMissing, got %v", err)
	}
	if _, err := c.Art("nobody"); !errors.Is(err, ErrMissing) {
		t.Errorf("unknown character should be ErrMissing, got %v", err)
	}
}

func TestEmptySprite(t *testing.T) {
	fsys := testFS()
	fsys["w.txt"] = &fstest.MapFile{Data: []byte("\n\n")}

	c, err := Load(fsys)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Sprite("w.txt", ""); !errors.Is(err, ErrMissing) {
		t.Errorf("empty sprite should be ErrMissing, got %v", err)
	}
}
