package eatk

import "math"

// The float64 conversions below round each product before the addition so the
// compiler cannot fuse them into FMA instructions; results must be identical
// on every architecture for tie-breaks to be reproducible.

// FinalAtk applies the combat ATK% buff to initial attack and adds the flat buff.
func FinalAtk(p StatProfile) float64 {
	return float64(p.InitialAtk*(1+p.CombatAtkBuff/100)) + p.FlatAtkBuff
}

// Evaluate returns the Effective Attack of p. Critical rate stops contributing
// at 100%.
func Evaluate(p StatProfile) float64 {
	crCapped := math.Min(p.CritRate/100, 1.0)
	cdDecimal := p.CritDamage / 100
	return FinalAtk(p) * (1 + float64(crCapped*cdDecimal))
}

// DeltaForRoll is the EATK gained by adding roll to the stat behind d.
func DeltaForRoll(p StatProfile, d Dimension, roll float64) float64 {
	return Evaluate(p.With(d, roll)) - Evaluate(p)
}

// Marginals returns the single-roll gain for every dimension against one
// shared baseline evaluation of p.
func Marginals(p StatProfile, rolls RollSpec) Gains {
	base := Evaluate(p)
	var gains Gains
	for _, d := range Dimensions() {
		gains[d] = Evaluate(p.With(d, rolls.Value(d))) - base
	}
	return gains
}
