package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// note is one step of a melody; a zero frequency is a rest.
type note struct {
	freq  float64
	beats float64
}

type melody struct {
	bpm   float64
	notes []note
}

const (
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	f4 = 349.23
	g4 = 392.00
	a4 = 440.00
	b4 = 493.88
	c5 = 523.25
	d5 = 587.33
	e5 = 659.25
	g5 = 783.99
)

var (
	menuTheme = melody{bpm: 112, notes: []note{
		{e4, 1}, {g4, 1}, {c5, 1}, {g4, 1},
		{a4, 1}, {c5, 1}, {e5, 2},
		{d5, 1}, {c5, 1}, {a4, 1}, {g4, 1},
		{e4, 2}, {0, 2},
	}}
	gameTrack1 = melody{bpm: 150, notes: []note{
		{c4, 0.5}, {e4, 0.5}, {g4, 0.5}, {c5, 0.5}, {g4, 0.5}, {e4, 0.5}, {c4, 1},
		{d4, 0.5}, {f4, 0.5}, {a4, 0.5}, {d5, 0.5}, {a4, 0.5}, {f4, 0.5}, {d4, 1},
		{e4, 0.5}, {g4, 0.5}, {b4, 0.5}, {e5, 0.5}, {d5, 0.5}, {b4, 0.5}, {g4, 1},
		{c5, 1}, {g4, 1}, {c4, 2},
	}}
	gameTrack2 = melody{bpm: 160, notes: []note{
		{a4, 0.5}, {0, 0.5}, {a4, 0.5}, {c5, 0.5}, {e5, 1}, {d5, 1},
		{c5, 0.5}, {b4, 0.5}, {a4, 0.5}, {g4, 0.5}, {e4, 2},
		{g4, 0.5}, {a4, 0.5}, {c5, 0.5}, {d5, 0.5}, {e5, 0.5}, {g5, 0.5}, {e5, 1},
		{d5, 1}, {c5, 1}, {a4, 2},
	}}
	hitSting = melody{bpm: 600, notes: []note{{a4, 1}, {a4 / 2, 1}}}
)

// voiceGain keeps the mix from clipping when several voices overlap.
var voiceGain = [handleCount]float64{
	MenuTheme:  0.30,
	GameTrack1: 0.30,
	GameTrack2: 0.30,
	FireLoop:   0.12,
	Hit:        0.40,
	Explosion:  0.50,
}

const (
	noteRamp        = 8 * time.Millisecond
	shotLength      = 45 * time.Millisecond
	shotGap         = 70 * time.Millisecond
	explosionLength = 350 * time.Millisecond
	shotFrequency   = 880.0
)

// sound builds a fresh, finite streamer for h.
func sound(h Handle, sr beep.SampleRate) (beep.Streamer, error) {
	switch h {
	case MenuTheme:
		return menuTheme.streamer(sr)
	case GameTrack1:
		return gameTrack1.streamer(sr)
	case GameTrack2:
		return gameTrack2.streamer(sr)
	case Hit:
		return hitSting.streamer(sr)
	case FireLoop:
		tone, err := generators.SineTone(sr, shotFrequency)
		if err != nil {
			return nil, err
		}
		n := sr.N(shotLength)
		return beep.Seq(newShape(beep.Take(n, tone), n, sr.N(noteRamp)), beep.Silence(sr.N(shotGap))), nil
	case Explosion:
		return newNoise(sr.N(explosionLength), rand.New(rand.NewSource(time.Now().UnixNano()))), nil
	default:
		return beep.Silence(1), nil
	}
}

// streamer renders the melody as a sequence of enveloped sine tones.
func (m melody) streamer(sr beep.SampleRate) (beep.Streamer, error) {
	beat := float64(time.Minute) / m.bpm
	ramp := sr.N(noteRamp)

	parts := make([]beep.Streamer, 0, len(m.notes))
	for _, n := range m.notes {
		samples := sr.N(time.Duration(n.beats * beat))
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, newShape(beep.Take(samples, tone), samples, ramp))
	}
	return beep.Seq(parts...), nil
}

// shape ramps a finite stream in and out so notes do not click.
type shape struct {
	streamer beep.Streamer
	pos      int
	total    int
	ramp     int
}

func newShape(s beep.Streamer, total, ramp int) *shape {
	if ramp*2 > total {
		ramp = total / 2
	}
	return &shape{streamer: s, total: total, ramp: ramp}
}

func (s *shape) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = s.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		switch {
		case s.ramp == 0:
		case s.pos < s.ramp:
			g = float64(s.pos) / float64(s.ramp)
		case s.pos >= s.total-s.ramp:
			g = float64(s.total-s.pos) / float64(s.ramp)
		}
		if g < 0 {
			g = 0
		}
		samples[i][0] *= g
		samples[i][1] *= g
		s.pos++
	}
	return n, ok
}

func (s *shape) Err() error { return s.streamer.Err() }

// noise is a white noise burst with a linear decay.
type noise struct {
	rng   *rand.Rand
	pos   int
	total int
}

func newNoise(total int, rng *rand.Rand) *noise {
	return &noise{rng: rng, total: total}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		decay := 1 - float64(s.pos)/float64(s.total)
		v := (s.rng.Float64()*2 - 1) * decay
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

// repeat plays a freshly built streamer over and over.
type repeat struct {
	build func() (beep.Streamer, error)
	cur   beep.Streamer
	err   error
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		fresh := false
		if r.cur == nil {
			if r.err != nil {
				return n, n > 0
			}
			r.cur, r.err = r.build()
			if r.err != nil {
				r.cur = nil
				return n, n > 0
			}
			fresh = true
		}
		m, more := r.cur.Stream(samples[n:])
		n += m
		if more && m == 0 {
			return n, true
		}
		if !more {
			r.cur = nil
			if fresh && m == 0 {
				return n, n > 0
			}
		}
	}
	return n, true
}

func (r *repeat) Err() error { return r.err }
