package validation

import (
	"fmt"

	"github.com/iwvelando/substat-optimizer/internal/eatk"
	"github.com/iwvelando/substat-optimizer/pkg/mathutil"
	"go.uber.org/multierr"
)

// ValidateInputs checks a profile and its roll sizes against the accepted
// input ranges and returns every violation combined into one error.
func ValidateInputs(profile eatk.StatProfile, rolls eatk.RollSpec) error {
	var err error

	fields := []struct {
		name  string
		value float64
	}{
		{"initialAtk", profile.InitialAtk},
		{"critRate", profile.CritRate},
		{"critDamage", profile.CritDamage},
		{"flatAtkBuff", profile.FlatAtkBuff},
		{"combatAtkBuff", profile.CombatAtkBuff},
		{"rolls.atk", rolls.Atk},
		{"rolls.critRate", rolls.CritRate},
		{"rolls.critDamage", rolls.CritDamage},
	}
	for _, f := range fields {
		if !mathutil.IsFinite(f.value) {
			err = multierr.Append(err, fmt.Errorf("%s must be a finite number", f.name))
		}
	}
	if err != nil {
		return err
	}

	if profile.InitialAtk < 0 {
		err = multierr.Append(err, fmt.Errorf("initialAtk %.2f must not be negative", profile.InitialAtk))
	}
	if profile.CritRate < 0 || profile.CritRate > 100 {
		err = multierr.Append(err, fmt.Errorf("critRate %.2f must be between 0 and 100", profile.CritRate))
	}
	if profile.CritDamage < 0 {
		err = multierr.Append(err, fmt.Errorf("critDamage %.2f must not be negative", profile.CritDamage))
	}
	if profile.CombatAtkBuff < 0 {
		err = multierr.Append(err, fmt.Errorf("combatAtkBuff %.2f must not be negative", profile.CombatAtkBuff))
	}
	if rolls.Atk < 0 {
		err = multierr.Append(err, fmt.Errorf("rolls.atk %.2f must not be negative", rolls.Atk))
	}
	if rolls.CritRate <= 0 {
		err = multierr.Append(err, fmt.Errorf("rolls.critRate %.2f must be positive", rolls.CritRate))
	}
	if rolls.CritDamage <= 0 {
		err = multierr.Append(err, fmt.Errorf("rolls.critDamage %.2f must be positive", rolls.CritDamage))
	}
	return err
}
