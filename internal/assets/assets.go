// Package assets loads the sprite catalog: an essential YAML manifest plus
// the text sprites and decorative banner it references.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pokeplaza/internal/core"
	"github.com/vovakirdan/pokeplaza/internal/games/pokeplaza"
)

// ManifestFile is the catalog entry point inside an asset directory.
const ManifestFile = "manifest.yaml"

// ErrMissing reports an asset that could not be loaded.
var ErrMissing = errors.New("assets: missing asset")

//go:embed data
var embedded embed.FS

// Character is a playable character from the manifest.
type Character struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Sprite string `yaml:"sprite"`
	Crouch string `yaml:"crouch"`
	Color  string `yaml:"color"`
}

// SpriteRef points at a sprite file and the color it is drawn in.
type SpriteRef struct {
	Sprite string `yaml:"sprite"`
	Color  string `yaml:"color"`
}

// Manifest is the decoded manifest.yaml.
type Manifest struct {
	Title      string               `yaml:"title"`
	Banner     string               `yaml:"banner"`
	Characters []Character          `yaml:"characters"`
	Enemies    map[string]SpriteRef `yaml:"enemies"`
}

// Catalog resolves sprites from an asset file system.
type Catalog struct {
	fsys     fs.FS
	manifest Manifest
}

// Embedded returns the built-in asset file system.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // the embed directive guarantees the directory
	}
	return sub
}

// Open loads the catalog from dir, or from the embedded assets when dir is empty.
func Open(dir string) (*Catalog, error) {
	if dir == "" {
		return Load(Embedded())
	}
	return Load(os.DirFS(dir))
}

// Load reads and validates the manifest. Without it no menu can be drawn,
// so every error here is fatal to the caller.
func Load(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissing, ManifestFile, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", ManifestFile, err)
	}
	if len(m.Characters) == 0 {
		return nil, fmt.Errorf("assets: %s lists no characters", ManifestFile)
	}
	seen := make(map[string]bool, len(m.Characters))
	for _, c := range m.Characters {
		if c.ID == "" || seen[c.ID] {
			return nil, fmt.Errorf("assets: %s: empty or duplicate character id %q", ManifestFile, c.ID)
		}
		seen[c.ID] = true
	}
	if m.Title == "" {
		m.Title = "PockyMan"
	}

	return &Catalog{fsys: fsys, manifest: m}, nil
}

// Title returns the game title shown on the main menu.
func (c *Catalog) Title() string {
	return c.manifest.Title
}

// Banner returns the decorative title art, or nothing if it cannot be read.
func (c *Catalog) Banner() []string {
	if c.manifest.Banner == "" {
		return nil
	}
	sp, err := c.Sprite(c.manifest.Banner, "")
	if err != nil {
		return nil
	}
	return sp.Rows
}

// Characters returns the playable characters in menu order.
func (c *Catalog) Characters() []Character {
	return append([]Character(nil), c.manifest.Characters...)
}

// Character looks up a character by id.
func (c *Catalog) Character(id string) (Character, bool) {
	for _, ch := range c.manifest.Characters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Character{}, false
}

// Sprite reads a sprite file. Trailing blank lines are dropped.
func (c *Catalog) Sprite(path, color string) (core.Sprite, error) {
	if path == "" {
		return core.Sprite{}, fmt.Errorf("%w: empty sprite path", ErrMissing)
	}
	data, err := fs.ReadFile(c.fsys, path)
	if err != nil {
		return core.Sprite{}, fmt.Errorf("%w: %s: %w", ErrMissing, path, err)
	}

	text := strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	sp := core.Sprite{Rows: strings.Split(text, "\n"), Color: core.ParseColor(color)}
	if sp.Empty() {
		return core.Sprite{}, fmt.Errorf("%w: %s is empty", ErrMissing, path)
	}
	return sp, nil
}

// Art loads every sprite a session with the given character needs.
// The crouch sprite is optional; everything else is required.
func (c *Catalog) Art(characterID string) (pokeplaza.Art, error) {
	var art pokeplaza.Art

	ch, ok := c.Character(characterID)
	if !ok {
		return art, fmt.Errorf("%w: unknown character %q", ErrMissing, characterID)
	}

	var err error
	if art.Player, err = c.Sprite(ch.Sprite, ch.Color); err != nil {
		return art, err
	}
	if ch.Crouch != "" {
		if crouch, err := c.Sprite(ch.Crouch, ch.Color); err == nil {
			art.PlayerCrouch = crouch
		}
	}

	for _, k := range pokeplaza.Kinds {
		ref, ok := c.manifest.Enemies[k.String()]
		if !ok {
			return art, fmt.Errorf("%w: no sprite for enemy %s", ErrMissing, k)
		}
		if art.Enemies[k], err = c.Sprite(ref.Sprite, ref.Color); err != nil {
			return art, err
		}
	}
	return art, nil
}
