// Package audio plays the game's music and sound effects.
//
// Sinks never fail the caller: a sink that cannot make a sound stays quiet.
package audio

import "math"

// Handle names a sound the game can play.
type Handle int

const (
	MenuTheme Handle = iota
	GameTrack1
	GameTrack2
	FireLoop
	Hit
	Explosion

	handleCount
)

// String returns the handle name used in logs.
func (h Handle) String() string {
	switch h {
	case MenuTheme:
		return "menu-theme"
	case GameTrack1:
		return "game-track-1"
	case GameTrack2:
		return "game-track-2"
	case FireLoop:
		return "fire-loop"
	case Hit:
		return "hit"
	case Explosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Channel returns the volume channel the sound belongs to.
func (h Handle) Channel() Channel {
	switch h {
	case MenuTheme, GameTrack1, GameTrack2:
		return Music
	default:
		return Sfx
	}
}

// Channel groups sounds under one volume control.
type Channel int

const (
	Music Channel = iota
	Sfx

	channelCount
)

func (c Channel) String() string {
	if c == Music {
		return "music"
	}
	return "sfx"
}

// Sink is an audio output.
type Sink interface {
	// Play starts h once from the beginning, replacing any earlier play of h.
	Play(h Handle)
	// Loop starts h and repeats it until stopped.
	Loop(h Handle)
	Pause(h Handle)
	Resume(h Handle)
	Stop(h Handle)
	// Playing reports whether h was started and has not finished yet.
	// A paused sound still counts as playing.
	Playing(h Handle) bool
	// SetVolume sets a channel volume in [0,100].
	SetVolume(ch Channel, v float64)
	Close() error
}

// Silent is a Sink that plays nothing.
type Silent struct{}

func (Silent) Play(Handle) {}
func (Silent) Loop(Handle) {}
func (Silent) Pause(Handle) {}
func (Silent) Resume(Handle) {}
func (Silent) Stop(Handle) {}
func (Silent) Playing(Handle) bool { return false }
func (Silent) SetVolume(Channel, float64) {}
func (Silent) Close() error { return nil }

// gain converts a 0..100 volume to linear gain.
func gain(v float64) float64 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 100:
		return 1
	default:
		return v / 100
	}
}
