package pokeplaza

import (
	"math"

	"github.com/vovakirdan/pokeplaza/internal/config"
)

var nonHeavy = [...]Kind{Walker, Flyer}

// Spawner decides when the next enemy appears and which kind it is.
//
// The interval shrinks with the score and with the effective speed
// multiplier. Heavies are kept apart by three layered rules: a longer gap
// after a heavy, a probabilistic re-roll of a repeated heavy, and a hard
// cap of one heavy in a row.
type Spawner struct {
	cfg config.SpawnTuning
	rng Rand

	clock    float64 // Seconds since the last spawn
	last     Kind
	hasLast  bool
	heavyRun int // Consecutive heavies at the tail of the spawn history
}

// NewSpawner creates a scheduler drawing from rng.
func NewSpawner(cfg config.SpawnTuning, rng Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Reset forgets the spawn history.
func (s *Spawner) Reset() {
	s.clock = 0
	s.hasLast = false
	s.heavyRun = 0
}

// Interval returns the base interval for a score, before the heavy gap and
// the speed division.
func (s *Spawner) Interval(score int) float64 {
	steps := 0
	if s.cfg.ScoreStep > 0 && score > 0 {
		steps = score / s.cfg.ScoreStep
	}
	return math.Max(s.cfg.MinInterval, s.cfg.BaseInterval-float64(steps)*s.cfg.IntervalStep)
}

// Due returns the seconds that must elapse between the last spawn and the
// next one at the given score and speed multiplier.
func (s *Spawner) Due(score int, speedMul float64) float64 {
	iv := s.Interval(score)
	if s.hasLast && s.last == Heavy {
		iv = math.Max(s.cfg.HeavyGapFloor, iv*s.cfg.HeavyGapFactor)
	}
	if speedMul <= 0 {
		speedMul = 1
	}
	return iv / speedMul
}

// Update advances the clock. When the interval has passed it picks a kind,
// resets the clock and returns true.
func (s *Spawner) Update(dt float64, score int, speedMul float64) (Kind, bool) {
	s.clock += dt
	if s.clock <= s.Due(score, speedMul) {
		return 0, false
	}

	k := s.choose()
	s.clock = 0
	s.last = k
	s.hasLast = true
	if k == Heavy {
		s.heavyRun++
	} else {
		s.heavyRun = 0
	}
	return k, true
}

func (s *Spawner) choose() Kind {
	k := Kinds[s.rng.Intn(len(Kinds))]
	if k == Heavy && s.hasLast && s.last == Heavy && s.rng.Float64() < s.cfg.RerollChance {
		k = s.other()
	}
	if k == Heavy && s.heavyRun >= 1 {
		k = s.other()
	}
	return k
}

func (s *Spawner) other() Kind {
	return nonHeavy[s.rng.Intn(len(nonHeavy))]
}

// Last returns the most recent spawn kind, if any.
func (s *Spawner) Last() (Kind, bool) {
	return s.last, s.hasLast
}
