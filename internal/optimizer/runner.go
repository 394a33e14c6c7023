package optimizer

import (
	"fmt"

	"github.com/iwvelando/substat-optimizer/internal/config"
	"github.com/iwvelando/substat-optimizer/internal/eatk"
	"go.uber.org/zap"
)

// Runner executes the optimizer for a loaded configuration and logs its
// progress.
type Runner struct {
	logger *zap.Logger
	conf   *config.Configuration
}

// NewRunner constructs a Runner for the provided configuration.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, conf: conf}, nil
}

// Profile returns the starting profile the runner optimizes.
func (r *Runner) Profile() eatk.StatProfile {
	return r.conf.Profile
}

// Rolls returns the roll sizes the runner exchanges.
func (r *Runner) Rolls() eatk.RollSpec {
	return r.conf.Rolls
}

// Run validates the configured inputs and executes the exchange loop.
func (r *Runner) Run() (*Result, error) {
	r.conf.Normalize()
	if err := r.conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid optimizer inputs: %w", err)
	}

	opts := Options{
		MaxIterations: r.conf.Optimizer.MaxIterations,
		Tolerance:     r.conf.Optimizer.Tolerance,
		OnStep:        r.logStep,
	}

	baseline := eatk.Evaluate(r.conf.Profile)
	result := OptimizeWithOptions(r.conf.Profile, r.conf.Rolls, opts)

	r.logger.Info("optimizer finished",
		zap.String("op", "optimizer.Run"),
		zap.Float64("baselineEATK", baseline),
		zap.Float64("optimizedEATK", result.EATK),
		zap.Float64("initialAtk", result.InitialAtk()),
		zap.Float64("critRate", result.CritRate()),
		zap.Float64("critDamage", result.CritDamage()),
		zap.Int("iterations", result.Iterations),
		zap.Int("moves", result.Moves),
		zap.Int("rejected", result.Rejected),
		zap.Bool("converged", result.Converged),
	)

	if !result.Converged && opts.MaxIterations > 0 {
		r.logger.Warn("optimizer stopped at iteration cap before marginal gains equalized",
			zap.String("op", "optimizer.Run"),
			zap.Int("maxIterations", opts.MaxIterations),
			zap.Float64("spread", result.Gains.Spread()),
		)
	}
	if result.Moves == 0 && result.Rejected > 0 {
		r.logger.Warn("every exchange was blocked by stat bounds",
			zap.String("op", "optimizer.Run"),
			zap.Int("rejected", result.Rejected),
		)
	}

	return &result, nil
}

func (r *Runner) logStep(step Step) {
	ce := r.logger.Check(zap.DebugLevel, "optimizer step")
	if ce == nil {
		return
	}
	ce.Write(
		zap.String("op", "optimizer.Run"),
		zap.Int("iteration", step.Iteration),
		zap.String("from", step.From.String()),
		zap.String("to", step.To.String()),
		zap.Bool("applied", step.Applied),
		zap.Float64("gainAtk", step.Gains.Of(eatk.Atk)),
		zap.Float64("gainCritRate", step.Gains.Of(eatk.CritRate)),
		zap.Float64("gainCritDamage", step.Gains.Of(eatk.CritDamage)),
		zap.Float64("initialAtk", step.Profile.InitialAtk),
		zap.Float64("critRate", step.Profile.CritRate),
		zap.Float64("critDamage", step.Profile.CritDamage),
	)
}
