package config

import (
	"fmt"
	"math"
	"strings"
)

// Tier is a difficulty level chosen before a session.
type Tier int

const (
	Easy Tier = iota
	Normal
	Hard
)

// Tiers lists every tier in menu order.
var Tiers = []Tier{Easy, Normal, Hard}

// TierParams are the per-tier multipliers.
type TierParams struct {
	SpeedMul     float64
	ScoreMul     float64
	ShotCooldown float64 // Seconds between shots
}

var tierTable = map[Tier]TierParams{
	Easy:   {SpeedMul: 0.7, ScoreMul: 0.5, ShotCooldown: 0.25},
	Normal: {SpeedMul: 1.0, ScoreMul: 1.0, ShotCooldown: 0.25},
	Hard:   {SpeedMul: 1.4, ScoreMul: 1.5, ShotCooldown: 0.50},
}

// Params returns the fixed multipliers of a tier. Unknown tiers get Normal.
func (t Tier) Params() TierParams {
	if p, ok := tierTable[t]; ok {
		return p
	}
	return tierTable[Normal]
}

// String returns the English tier name.
func (t Tier) String() string {
	switch t {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Label returns the name persisted with high-score entries.
func (t Tier) Label() string {
	switch t {
	case Easy:
		return "Facil"
	case Hard:
		return "Dificil"
	default:
		return "Normal"
	}
}

// ParseTier maps a persisted label or tier name back to a tier.
// Unknown labels map to Normal.
func ParseTier(label string) Tier {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "facil", "easy":
		return Easy
	case "dificil", "hard":
		return Hard
	default:
		return Normal
	}
}

// ProgressMultiplier grows with the live score and caps at 2.
func ProgressMultiplier(score int) float64 {
	return math.Min(2.0, 1+float64(score)/100)
}

// EffectiveSpeed is the tier speed multiplier scaled by score progress.
func EffectiveSpeed(t Tier, score int) float64 {
	return t.Params().SpeedMul * ProgressMultiplier(score)
}

// HitScore is the score awarded for one destroyed enemy, rounded down.
func HitScore(base int, t Tier) int {
	return int(math.Floor(float64(base) * t.Params().ScoreMul))
}
