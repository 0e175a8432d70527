package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type voice struct {
	ctrl *beep.Ctrl
	vol  *effects.Volume
	done atomic.Bool
}

// Synth is a Sink that synthesizes every sound on the system speaker.
type Synth struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	mixer  *beep.Mixer
	voices [handleCount]*voice
	volume [channelCount]float64
	closed bool
	// speaker is false for synths that are mixed by hand.
	speaker bool
}

// NewSynth opens the system speaker. On error the caller falls back to Silent.
func NewSynth(music, sfx float64) (*Synth, error) {
	s := newSynth(sampleRate, music, sfx)
	if err := speaker.Init(s.sr, s.sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.speaker = true
	return s, nil
}

func newSynth(sr beep.SampleRate, music, sfx float64) *Synth {
	s := &Synth{sr: sr, mixer: &beep.Mixer{}}
	s.volume[Music] = gain(music)
	s.volume[Sfx] = gain(sfx)
	return s
}

func (s *Synth) lock() {
	if s.speaker {
		speaker.Lock()
	}
}

func (s *Synth) unlock() {
	if s.speaker {
		speaker.Unlock()
	}
}

// Play starts h once.
func (s *Synth) Play(h Handle) {
	st, err := sound(h, s.sr)
	if err != nil {
		return
	}
	s.start(h, st)
}

// Loop starts h and repeats it until stopped.
func (s *Synth) Loop(h Handle) {
	if _, err := sound(h, s.sr); err != nil {
		return
	}
	s.start(h, &repeat{build: func() (beep.Streamer, error) { return sound(h, s.sr) }})
}

func (s *Synth) start(h Handle, st beep.Streamer) {
	if h < 0 || h >= handleCount {
		return
	}

	v := &voice{}
	v.ctrl = &beep.Ctrl{Streamer: beep.Seq(st, beep.Callback(func() { v.done.Store(true) }))}
	v.vol = &effects.Volume{Streamer: v.ctrl, Base: 2}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.lock()
	if old := s.voices[h]; old != nil {
		old.ctrl.Streamer = nil
		old.done.Store(true)
	}
	setGain(v.vol, s.volume[h.Channel()]*voiceGain[h])
	s.mixer.Add(v.vol)
	s.unlock()

	s.voices[h] = v
}

// Pause holds h at its current position.
func (s *Synth) Pause(h Handle) { s.setPaused(h, true) }

// Resume continues a paused h.
func (s *Synth) Resume(h Handle) { s.setPaused(h, false) }

func (s *Synth) setPaused(h Handle, paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.voice(h)
	if v == nil {
		return
	}
	s.lock()
	v.ctrl.Paused = paused
	s.unlock()
}

// Stop ends h; the mixer drops it on the next buffer.
func (s *Synth) Stop(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.voice(h)
	if v == nil {
		return
	}
	s.lock()
	v.ctrl.Streamer = nil
	s.unlock()
	v.done.Store(true)
	s.voices[h] = nil
}

// Playing reports whether h is started and unfinished.
func (s *Synth) Playing(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.voice(h)
	return v != nil && !v.done.Load()
}

// SetVolume changes a channel volume, including sounds already playing.
func (s *Synth) SetVolume(ch Channel, vol float64) {
	if ch < 0 || ch >= channelCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume[ch] = gain(vol)
	s.lock()
	for h, v := range s.voices {
		if v != nil && Handle(h).Channel() == ch {
			setGain(v.vol, s.volume[ch]*voiceGain[h])
		}
	}
	s.unlock()
}

// Close silences everything and releases the speaker.
func (s *Synth) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	s.lock()
	s.mixer.Clear()
	s.unlock()
	s.voices = [handleCount]*voice{}

	if s.speaker {
		speaker.Clear()
		speaker.Close()
	}
	return nil
}

func (s *Synth) voice(h Handle) *voice {
	if h < 0 || h >= handleCount {
		return nil
	}
	return s.voices[h]
}

// setGain maps linear gain onto the logarithmic volume effect.
// math.Log2(0) is -Inf, so zero gain is expressed as silence.
func setGain(v *effects.Volume, g float64) {
	if g <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(g)
}
