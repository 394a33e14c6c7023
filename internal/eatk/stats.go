// Package eatk computes Effective Attack (EATK) from a character stat profile
// and the marginal gain of single substat rolls.
package eatk

import (
	"fmt"

	"github.com/iwvelando/substat-optimizer/pkg/constants"
)

// Dimension enumerates the stat categories a roll can be spent on. The
// declaration order is the tie-break order used when selecting the largest
// and smallest marginal gain.
type Dimension uint8

const (
	Atk Dimension = iota
	CritRate
	CritDamage

	DimensionCount
)

// Dimensions returns every dimension in tie-break order.
func Dimensions() []Dimension {
	return []Dimension{Atk, CritRate, CritDamage}
}

func (d Dimension) String() string {
	switch d {
	case Atk:
		return "atk"
	case CritRate:
		return "cr"
	case CritDamage:
		return "cd"
	default:
		return fmt.Sprintf("dimension(%d)", uint8(d))
	}
}

// Label is the human readable name of the stat behind d.
func (d Dimension) Label() string {
	switch d {
	case Atk:
		return "ATK%"
	case CritRate:
		return "CR%"
	case CritDamage:
		return "CD%"
	default:
		return d.String()
	}
}

// StatProfile is a snapshot of the stats that feed EATK. CritRate and
// CritDamage are percentages; CombatAtkBuff is a percentage applied to
// InitialAtk before FlatAtkBuff is added.
type StatProfile struct {
	InitialAtk    float64 `json:"initialAtk" yaml:"initialAtk"`
	CritRate      float64 `json:"critRate" yaml:"critRate"`
	CritDamage    float64 `json:"critDamage" yaml:"critDamage"`
	FlatAtkBuff   float64 `json:"flatAtkBuff" yaml:"flatAtkBuff"`
	CombatAtkBuff float64 `json:"combatAtkBuff" yaml:"combatAtkBuff"`
}

// Stat returns the value of the stat behind d.
func (p StatProfile) Stat(d Dimension) float64 {
	switch d {
	case Atk:
		return p.InitialAtk
	case CritRate:
		return p.CritRate
	case CritDamage:
		return p.CritDamage
	default:
		return 0
	}
}

// With returns a copy of p with delta added to the stat behind d.
func (p StatProfile) With(d Dimension, delta float64) StatProfile {
	switch d {
	case Atk:
		p.InitialAtk += delta
	case CritRate:
		p.CritRate += delta
	case CritDamage:
		p.CritDamage += delta
	}
	return p
}

// RollSpec holds the fixed size of one roll per dimension.
type RollSpec struct {
	Atk        float64 `json:"atk" yaml:"atk"`
	CritRate   float64 `json:"critRate" yaml:"critRate"`
	CritDamage float64 `json:"critDamage" yaml:"critDamage"`
}

// DefaultRollSpec uses the standard CR and CD roll sizes with the given ATK roll.
func DefaultRollSpec(atkRoll float64) RollSpec {
	return RollSpec{
		Atk:        atkRoll,
		CritRate:   constants.DefaultCritRateRoll,
		CritDamage: constants.DefaultCritDamageRoll,
	}
}

// Value returns the roll size for d.
func (r RollSpec) Value(d Dimension) float64 {
	switch d {
	case Atk:
		return r.Atk
	case CritRate:
		return r.CritRate
	case CritDamage:
		return r.CritDamage
	default:
		return 0
	}
}

// Gains holds one marginal gain per dimension.
type Gains [DimensionCount]float64

// Of returns the gain recorded for d.
func (g Gains) Of(d Dimension) float64 {
	return g[d]
}

// Max returns the dimension with the largest gain, keeping the first one on ties.
func (g Gains) Max() Dimension {
	best := Atk
	for _, d := range Dimensions()[1:] {
		if g[d] > g[best] {
			best = d
		}
	}
	return best
}

// Min returns the dimension with the smallest gain, keeping the first one on ties.
func (g Gains) Min() Dimension {
	best := Atk
	for _, d := range Dimensions()[1:] {
		if g[d] < g[best] {
			best = d
		}
	}
	return best
}

// Spread is the distance between the largest and smallest gain.
func (g Gains) Spread() float64 {
	return g[g.Max()] - g[g.Min()]
}
