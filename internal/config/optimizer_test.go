package config

import (
	"testing"

	"github.com/iwvelando/substat-optimizer/pkg/constants"
)

func TestOptimizerConfigNormalize(t *testing.T) {
	testCases := []struct {
		name      string
		tolerance float64
		expected  float64
	}{
		{name: "zero tolerance defaults", tolerance: 0, expected: constants.EquilibriumTolerance},
		{name: "negative tolerance defaults", tolerance: -1, expected: constants.EquilibriumTolerance},
		{name: "explicit tolerance kept", tolerance: 0.01, expected: 0.01},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := OptimizerConfig{MaxIterations: 0, Tolerance: tc.tolerance}
			cfg.Normalize()
			if cfg.Tolerance != tc.expected {
				t.Fatalf("expected tolerance %v, got %v", tc.expected, cfg.Tolerance)
			}
			if cfg.MaxIterations != 0 {
				t.Fatalf("normalize must keep a zero iteration cap, got %d", cfg.MaxIterations)
			}
		})
	}
}

func TestOptimizerConfigValidate(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       *OptimizerConfig
		expectErr bool
	}{
		{name: "nil config", cfg: nil, expectErr: true},
		{name: "defaults", cfg: &OptimizerConfig{MaxIterations: 100}, expectErr: false},
		{name: "zero iterations", cfg: &OptimizerConfig{}, expectErr: false},
		{name: "negative iterations", cfg: &OptimizerConfig{MaxIterations: -5}, expectErr: true},
		{name: "tolerance too coarse", cfg: &OptimizerConfig{MaxIterations: 10, Tolerance: 2}, expectErr: true},
		{name: "tolerance of one", cfg: &OptimizerConfig{MaxIterations: 10, Tolerance: 1}, expectErr: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.expectErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.expectErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
