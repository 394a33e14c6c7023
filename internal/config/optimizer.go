package config

import (
	"fmt"

	"github.com/iwvelando/substat-optimizer/pkg/constants"
)

// OptimizerConfig controls the exchange loop.
type OptimizerConfig struct {
	MaxIterations int     `yaml:"maxIterations"`
	Tolerance     float64 `yaml:"tolerance,omitempty"`
}

// Normalize ensures defaults are applied before validation. A zero iteration
// cap is kept: it asks for an evaluation without any exchange.
func (o *OptimizerConfig) Normalize() {
	if o == nil {
		return
	}
	if o.Tolerance <= 0 {
		o.Tolerance = constants.EquilibriumTolerance
	}
}

// Validate returns an error when the optimizer configuration is unsupported.
func (o *OptimizerConfig) Validate() error {
	if o == nil {
		return fmt.Errorf("optimizer configuration cannot be nil")
	}

	o.Normalize()

	if o.MaxIterations < 0 {
		return fmt.Errorf("optimizer maxIterations %d must not be negative", o.MaxIterations)
	}
	if o.Tolerance > 1 {
		return fmt.Errorf("optimizer tolerance %g is too coarse to detect equilibrium", o.Tolerance)
	}
	return nil
}
