package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/substat-optimizer/internal/eatk"
	"go.uber.org/multierr"
)

func validProfile() eatk.StatProfile {
	return eatk.StatProfile{InitialAtk: 2900, CritRate: 80, CritDamage: 160, FlatAtkBuff: 200, CombatAtkBuff: 25}
}

func TestValidateInputs(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p *eatk.StatProfile, r *eatk.RollSpec)
		wantErrors int
		contains   string
	}{
		{
			name:   "Defaults are valid",
			mutate: func(p *eatk.StatProfile, r *eatk.RollSpec) {},
		},
		{
			name:   "Negative flat buff is allowed",
			mutate: func(p *eatk.StatProfile, r *eatk.RollSpec) { p.FlatAtkBuff = -500 },
		},
		{
			name:   "Zero attack roll is allowed",
			mutate: func(p *eatk.StatProfile, r *eatk.RollSpec) { r.Atk = 0 },
		},
		{
			name:   "Crit rate at bounds",
			mutate: func(p *eatk.StatProfile, r *eatk.RollSpec) { p.CritRate = 100 },
		},
		{
			name:       "Negative initial attack",
			mutate:     func(p *eatk.StatProfile, r *eatk.RollSpec) { p.InitialAtk = -1 },
			wantErrors: 1,
			contains:   "initialAtk",
		},
		{
			name:       "Crit rate above 100",
			mutate:     func(p *eatk.StatProfile, r *eatk.RollSpec) { p.CritRate = 100.1 },
			wantErrors: 1,
			contains:   "critRate",
		},
		{
			name:       "Negative combat buff",
			mutate:     func(p *eatk.StatProfile, r *eatk.RollSpec) { p.CombatAtkBuff = -10 },
			wantErrors: 1,
			contains:   "combatAtkBuff",
		},
		{
			name: "Non-positive crit rolls",
			mutate: func(p *eatk.StatProfile, r *eatk.RollSpec) {
				r.CritRate = 0
				r.CritDamage = -4.8
			},
			wantErrors: 2,
			contains:   "rolls.critDamage",
		},
		{
			name: "Several violations are combined",
			mutate: func(p *eatk.StatProfile, r *eatk.RollSpec) {
				p.InitialAtk = -1
				p.CritDamage = -1
				r.Atk = -1
			},
			wantErrors: 3,
			contains:   "rolls.atk",
		},
		{
			name:       "NaN is rejected",
			mutate:     func(p *eatk.StatProfile, r *eatk.RollSpec) { p.CritDamage = math.NaN() },
			wantErrors: 1,
			contains:   "finite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			rolls := eatk.DefaultRollSpec(49.26)
			tt.mutate(&profile, &rolls)

			err := ValidateInputs(profile, rolls)
			if tt.wantErrors == 0 {
				if err != nil {
					t.Fatalf("ValidateInputs() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateInputs() expected error but got none")
			}
			if got := len(multierr.Errors(err)); got != tt.wantErrors {
				t.Errorf("expected %d errors, got %d: %v", tt.wantErrors, got, err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error to mention %q, got %v", tt.contains, err)
			}
		})
	}
}
