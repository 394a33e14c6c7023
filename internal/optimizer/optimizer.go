// Package optimizer reallocates substat rolls between attack, critical rate
// and critical damage until their marginal EATK gains are as close as the
// roll granularity allows.
//
// The search is a greedy local exchange: each iteration moves one roll from
// the stat with the smallest marginal gain to the stat with the largest one.
// It is a hill-climber, not a global solver, and on a discrete roll lattice it
// commonly settles into a two-point cycle rather than exact equilibrium.
package optimizer

import (
	"github.com/iwvelando/substat-optimizer/internal/eatk"
	"github.com/iwvelando/substat-optimizer/pkg/constants"
	"github.com/iwvelando/substat-optimizer/pkg/mathutil"
)

// Options tunes a single optimization run.
type Options struct {
	// MaxIterations caps the exchange loop. Zero or negative performs no
	// iterations.
	MaxIterations int
	// Tolerance is the marginal gain spread under which the run stops.
	// Non-positive values use constants.EquilibriumTolerance.
	Tolerance float64
	// OnStep, when set, observes every iteration that attempted a move.
	OnStep func(Step)
}

// DefaultOptions returns the standard iteration cap and tolerance.
func DefaultOptions() Options {
	return Options{
		MaxIterations: constants.DefaultMaxIterations,
		Tolerance:     constants.EquilibriumTolerance,
	}
}

// Step describes one iteration of the exchange loop.
type Step struct {
	Iteration int
	Gains     eatk.Gains
	From      eatk.Dimension
	To        eatk.Dimension
	Applied   bool
	Profile   eatk.StatProfile
}

// Result is the final working profile and its EATK, with run statistics.
type Result struct {
	Profile eatk.StatProfile `json:"profile"`
	EATK    float64          `json:"eatk"`
	// Gains are the marginal gains at Profile.
	Gains      eatk.Gains `json:"-"`
	Iterations int        `json:"iterations"`
	Moves      int        `json:"moves"`
	Rejected   int        `json:"rejected"`
	Converged  bool       `json:"converged"`
}

// InitialAtk returns the optimized initial attack.
func (r Result) InitialAtk() float64 {
	return r.Profile.InitialAtk
}

// CritRate returns the optimized critical rate.
func (r Result) CritRate() float64 {
	return r.Profile.CritRate
}

// CritDamage returns the optimized critical damage.
func (r Result) CritDamage() float64 {
	return r.Profile.CritDamage
}

// Optimize runs the exchange loop for at most maxIterations iterations with
// the default equilibrium tolerance.
func Optimize(profile eatk.StatProfile, rolls eatk.RollSpec, maxIterations int) Result {
	opts := DefaultOptions()
	opts.MaxIterations = maxIterations
	return OptimizeWithOptions(profile, rolls, opts)
}

// OptimizeWithOptions runs the exchange loop. It never fails: the iteration
// cap bounds the work even when every move is rejected.
func OptimizeWithOptions(profile eatk.StatProfile, rolls eatk.RollSpec, opts Options) Result {
	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = constants.EquilibriumTolerance
	}

	current := profile
	result := Result{}

	for i := 0; i < opts.MaxIterations; i++ {
		gains := eatk.Marginals(current, rolls)
		to := gains.Max()
		from := gains.Min()

		if mathutil.WithinTolerance(gains.Of(to), gains.Of(from), tolerance) {
			result.Converged = true
			break
		}

		result.Iterations++
		applied := exchange(&current, from, to, rolls)
		if applied {
			result.Moves++
		} else {
			result.Rejected++
		}
		clampProfile(&current)

		if opts.OnStep != nil {
			opts.OnStep(Step{
				Iteration: i + 1,
				Gains:     gains,
				From:      from,
				To:        to,
				Applied:   applied,
				Profile:   current,
			})
		}
	}

	result.Profile = current
	result.EATK = eatk.Evaluate(current)
	result.Gains = eatk.Marginals(current, rolls)
	return result
}

type move struct {
	from eatk.Dimension
	to   eatk.Dimension
}

// exchange shifts one roll from one dimension to another in place. Moves that
// would push critical rate below 5% or critical damage below 50% are rejected
// whole and leave p untouched. Attack has no pre-move check; its floor is
// enforced by clampProfile.
func exchange(p *eatk.StatProfile, from, to eatk.Dimension, rolls eatk.RollSpec) bool {
	switch (move{from, to}) {
	case move{eatk.Atk, eatk.CritRate}:
		p.InitialAtk -= rolls.Atk
		p.CritRate = mathutil.Min(p.CritRate+rolls.CritRate, constants.CritRateUpper)
	case move{eatk.Atk, eatk.CritDamage}:
		p.InitialAtk -= rolls.Atk
		p.CritDamage = mathutil.Max(p.CritDamage+rolls.CritDamage, constants.CritDamageLower)
	case move{eatk.CritRate, eatk.Atk}:
		if p.CritRate-rolls.CritRate < constants.CritRateLower {
			return false
		}
		p.InitialAtk += rolls.Atk
		p.CritRate -= rolls.CritRate
	case move{eatk.CritRate, eatk.CritDamage}:
		if p.CritRate-rolls.CritRate < constants.CritRateLower {
			return false
		}
		p.CritRate -= rolls.CritRate
		p.CritDamage = mathutil.Max(p.CritDamage+rolls.CritDamage, constants.CritDamageLower)
	case move{eatk.CritDamage, eatk.Atk}:
		if p.CritDamage-rolls.CritDamage < constants.CritDamageLower {
			return false
		}
		p.InitialAtk += rolls.Atk
		p.CritDamage -= rolls.CritDamage
	case move{eatk.CritDamage, eatk.CritRate}:
		if p.CritDamage-rolls.CritDamage < constants.CritDamageLower {
			return false
		}
		p.CritDamage -= rolls.CritDamage
		p.CritRate = mathutil.Min(p.CritRate+rolls.CritRate, constants.CritRateUpper)
	default:
		// from == to only happens when all gains are equal, which stops the loop first.
		return false
	}
	return true
}

func clampProfile(p *eatk.StatProfile) {
	p.CritRate = mathutil.Clamp(p.CritRate, constants.CritRateLower, constants.CritRateUpper)
	p.CritDamage = mathutil.Max(p.CritDamage, constants.CritDamageLower)
	p.InitialAtk = mathutil.Max(p.InitialAtk, constants.AtkLower)
}
