// Package report assembles the figures shown to a user: EATK at a profile,
// the effect of one extra roll of each stat, and the optimizer outcome.
package report

import (
	"github.com/iwvelando/substat-optimizer/internal/eatk"
	"github.com/iwvelando/substat-optimizer/internal/optimizer"
	"github.com/iwvelando/substat-optimizer/pkg/mathutil"
)

// RollEffect is the outcome of adding one roll of a stat.
type RollEffect struct {
	Dimension string `json:"dimension"`
	Label     string `json:"label"`
	// Stat is the current value of the stat the roll is added to.
	Stat     float64 `json:"stat"`
	Roll     float64 `json:"roll"`
	EATK     float64 `json:"eatk"`
	Increase float64 `json:"increase"`
	// Percent is Increase relative to the snapshot EATK; zero when that EATK is zero.
	Percent float64 `json:"percent"`
}

// Snapshot is a profile, its EATK and the single-roll effects at it.
type Snapshot struct {
	Profile  eatk.StatProfile `json:"profile"`
	FinalAtk float64          `json:"finalAtk"`
	EATK     float64          `json:"eatk"`
	Rolls    []RollEffect     `json:"rolls"`
}

// Effect returns the roll effect for d.
func (s Snapshot) Effect(d eatk.Dimension) RollEffect {
	for _, effect := range s.Rolls {
		if effect.Dimension == d.String() {
			return effect
		}
	}
	return RollEffect{}
}

// Run summarizes how the optimizer got from the base to the optimized profile.
type Run struct {
	Iterations int  `json:"iterations"`
	Moves      int  `json:"moves"`
	Rejected   int  `json:"rejected"`
	Converged  bool `json:"converged"`
}

// Report is everything rendered after an optimization.
type Report struct {
	RollSpec  eatk.RollSpec `json:"rollSpec"`
	Base      Snapshot      `json:"base"`
	Optimized Snapshot      `json:"optimized"`
	Run       Run           `json:"run"`
	// Gain is the optimized EATK minus the base EATK.
	Gain float64 `json:"gain"`
}

// Evaluate builds the snapshot for profile.
func Evaluate(profile eatk.StatProfile, rolls eatk.RollSpec) Snapshot {
	base := eatk.Evaluate(profile)
	snapshot := Snapshot{
		Profile:  profile,
		FinalAtk: eatk.FinalAtk(profile),
		EATK:     base,
		Rolls:    make([]RollEffect, 0, eatk.DimensionCount),
	}
	for _, d := range eatk.Dimensions() {
		roll := rolls.Value(d)
		increase := eatk.DeltaForRoll(profile, d, roll)
		snapshot.Rolls = append(snapshot.Rolls, RollEffect{
			Dimension: d.String(),
			Label:     d.Label(),
			Stat:      profile.Stat(d),
			Roll:      roll,
			EATK:      base + increase,
			Increase:  increase,
			Percent:   mathutil.CalculatePercentage(increase, base),
		})
	}
	return snapshot
}

// Build assembles the report for an optimizer result started from profile.
func Build(profile eatk.StatProfile, rolls eatk.RollSpec, result optimizer.Result) Report {
	base := Evaluate(profile, rolls)
	optimized := Evaluate(result.Profile, rolls)
	return Report{
		RollSpec:  rolls,
		Base:      base,
		Optimized: optimized,
		Run: Run{
			Iterations: result.Iterations,
			Moves:      result.Moves,
			Rejected:   result.Rejected,
			Converged:  result.Converged,
		},
		Gain: optimized.EATK - base.EATK,
	}
}
