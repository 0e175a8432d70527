// Package settings holds the process-wide session configuration: audio
// volumes and the high-score table.
package settings

import (
	"math"

	"github.com/vovakirdan/pokeplaza/internal/core"
	"github.com/vovakirdan/pokeplaza/internal/highscore"
)

const (
	MinVolume     = 0.0
	MaxVolume     = 100.0
	DefaultVolume = 50.0
	// VolumeStep is the change applied by one left/right press on the settings screen.
	VolumeStep = 5.0
)

// SessionConfig is loaded at startup and persisted after every change.
type SessionConfig struct {
	MusicVolume float64
	SfxVolume   float64
	Scores      highscore.Table
}

// Default returns the configuration used when nothing is persisted.
func Default() SessionConfig {
	return SessionConfig{
		MusicVolume: DefaultVolume,
		SfxVolume:   DefaultVolume,
	}
}

// ClampVolume restricts a volume to [0,100]. Out of range input is never rejected.
func ClampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultVolume
	}
	return core.ClampF(v, MinVolume, MaxVolume)
}

// SetMusicVolume sets the music volume, clamped.
func (c *SessionConfig) SetMusicVolume(v float64) {
	c.MusicVolume = ClampVolume(v)
}

// SetSfxVolume sets the sound effect volume, clamped.
func (c *SessionConfig) SetSfxVolume(v float64) {
	c.SfxVolume = ClampVolume(v)
}

// AdjustMusic changes the music volume by a number of steps.
func (c *SessionConfig) AdjustMusic(steps int) {
	c.SetMusicVolume(c.MusicVolume + float64(steps)*VolumeStep)
}

// AdjustSfx changes the sound effect volume by a number of steps.
func (c *SessionConfig) AdjustSfx(steps int) {
	c.SetSfxVolume(c.SfxVolume + float64(steps)*VolumeStep)
}
