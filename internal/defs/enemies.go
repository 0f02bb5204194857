// internal/defs/enemies.go
package defs

import (
	"image/color"

	"go-space-invaders/internal/config"
)

// Tier is the row-band class of an enemy unit.
type Tier int

const (
	TierA Tier = iota // top row
	TierB
	TierC
)

func (t Tier) String() string {
	switch t {
	case TierA:
		return "A"
	case TierB:
		return "B"
	case TierC:
		return "C"
	}
	return "?"
}

// TierDefinition holds the static data shared by every unit of a tier.
type TierDefinition struct {
	Tier  Tier
	Color color.RGBA
	Value int
}

// TierTable maps a tier to its colour and score value.
type TierTable [3]TierDefinition

// NewTierTable builds the lookup table once per match from the score config.
func NewTierTable(score config.ScoreConfig) TierTable {
	return TierTable{
		{Tier: TierA, Color: config.TierColors[TierA], Value: score.TierA},
		{Tier: TierB, Color: config.TierColors[TierB], Value: score.TierB},
		{Tier: TierC, Color: config.TierColors[TierC], Value: score.TierC},
	}
}

// Get returns the definition of t, falling back to the lowest tier.
func (tt TierTable) Get(t Tier) TierDefinition {
	if t < TierA || t > TierC {
		return tt[TierC]
	}
	return tt[t]
}

// TierForRow applies the row bands: rows up to bands[0] are A, up to bands[1] B, the rest C.
func TierForRow(row int, bands [2]int) Tier {
	switch {
	case row <= bands[0]:
		return TierA
	case row <= bands[1]:
		return TierB
	default:
		return TierC
	}
}
